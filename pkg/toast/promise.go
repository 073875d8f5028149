package toast

import (
	"context"
	"fmt"
	"sync"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/morph"
)

// PromiseData describes the toasts of a tracked operation. Each settled
// field is either static or, when its Fn is set, computed from the
// result.
type PromiseData[T any] struct {
	Loading   string
	Success   string
	SuccessFn func(T) string
	Error     string
	ErrorFn   func(error) string

	Description PromiseDescription[T]
	Action      PromiseAction[T]

	// Options apply to every phase, e.g. WithSpring or WithFill.
	Options []Option
}

// PromiseDescription is the description per phase.
type PromiseDescription[T any] struct {
	Loading   string
	Success   string
	SuccessFn func(T) string
	Error     string
	ErrorFn   func(error) string
}

// PromiseAction is the action button per settled phase.
type PromiseAction[T any] struct {
	Success   *Action
	SuccessFn func(T) *Action
	Error     *Action
	ErrorFn   func(error) *Action
}

// Tracked is a promise toast's operation.
type Tracked[T any] struct {
	id   string
	done chan struct{}

	once  sync.Once
	value T
	err   error
}

// ID is the toast id.
func (tr *Tracked[T]) ID() string { return tr.id }

// Done is closed once the operation has settled.
func (tr *Tracked[T]) Done() <-chan struct{} { return tr.done }

// Wait blocks until the operation settles or ctx is done, returning the
// operation's result.
func (tr *Tracked[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-tr.done:
		return tr.value, tr.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (tr *Tracked[T]) settle(v T, err error) {
	tr.once.Do(func() {
		tr.value, tr.err = v, err
		close(tr.done)
	})
}

// Promise runs fn on its own goroutine and tracks it with one toast: a
// loading toast right away, then success or error in place when fn
// returns. An error result moves the toast to the error phase; it is not
// logged as a failure. A panic in fn is recovered and settles the promise
// with a G004 error.
func Promise[T any](ctx context.Context, t *Toaster, fn func(context.Context) (T, error), data PromiseData[T]) *Tracked[T] {
	h := t.Loading(data.Loading, append(append([]Option(nil), data.Options...),
		WithDescription(data.Description.Loading))...)
	tr := &Tracked[T]{id: h.ID(), done: make(chan struct{})}

	spanCtx, span := t.tracer.StartPromise(ctx, tr.id, data.Loading)
	go func() {
		v, err := call(spanCtx, fn)
		if errors.CodeOf(err) == "G004" {
			t.logger.Warn("promise operation panicked", "id", tr.id, "error", err)
		}
		if err != nil {
			span.Rejected(err)
		} else {
			span.Resolved()
		}
		t.sched.Dispatch(func() {
			phase, title, opts := data.settled(v, err)
			if _, ok := t.instances[tr.id]; !ok {
				t.logger.Debug("promise settled after dismissal", "id", tr.id, "phase", phase)
				return
			}
			o := buildOptions(append(opts, WithID(tr.id)))
			c := o.content(phase, title)
			t.upsert(o, c, o.hostDuration(c))
			t.logger.Debug("promise settled", "id", tr.id, "phase", phase)
		})
		tr.settle(v, err)
	}()
	return tr
}

func call[T any](ctx context.Context, fn func(context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			v, err = zero, errors.New("G004").Wrap(fmt.Errorf("%v", r))
		}
	}()
	return fn(ctx)
}

// settled resolves the phase, title and options for a result.
func (d PromiseData[T]) settled(v T, err error) (morph.Phase, string, []Option) {
	opts := append([]Option(nil), d.Options...)
	if err != nil {
		title := d.Error
		if d.ErrorFn != nil {
			title = d.ErrorFn(err)
		}
		desc := d.Description.Error
		if d.Description.ErrorFn != nil {
			desc = d.Description.ErrorFn(err)
		}
		action := d.Action.Error
		if d.Action.ErrorFn != nil {
			action = d.Action.ErrorFn(err)
		}
		return morph.PhaseError, title, withBody(opts, desc, action)
	}
	title := d.Success
	if d.SuccessFn != nil {
		title = d.SuccessFn(v)
	}
	desc := d.Description.Success
	if d.Description.SuccessFn != nil {
		desc = d.Description.SuccessFn(v)
	}
	action := d.Action.Success
	if d.Action.SuccessFn != nil {
		action = d.Action.SuccessFn(v)
	}
	return morph.PhaseSuccess, title, withBody(opts, desc, action)
}

func withBody(opts []Option, desc string, action *Action) []Option {
	if desc != "" {
		opts = append(opts, WithDescription(desc))
	}
	if action != nil {
		opts = append(opts, WithAction(*action))
	}
	return opts
}
