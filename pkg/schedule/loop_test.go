package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoopAfterAndFrame(t *testing.T) {
	loop := NewLoop(LoopConfig{FrameInterval: 2 * time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	timerDone := make(chan struct{})
	loop.After(5*time.Millisecond, func() { close(timerDone) })

	frameDone := make(chan struct{})
	loop.Frame(func() { close(frameDone) })

	for _, ch := range []chan struct{}{timerDone, frameDone} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("callback did not run")
		}
	}
}

func TestLoopCancel(t *testing.T) {
	loop := NewLoop(LoopConfig{FrameInterval: time.Millisecond})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	var fired atomic.Int32
	stopTimer := loop.After(10*time.Millisecond, func() { fired.Add(1) })
	stopFrame := loop.Frame(func() { fired.Add(1) })
	stopTimer()
	stopFrame()

	time.Sleep(40 * time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("canceled callbacks fired %d times", fired.Load())
	}
}

func TestLoopRecoversPanics(t *testing.T) {
	loop := NewLoop(LoopConfig{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Run(ctx)

	loop.Dispatch(func() { panic("boom") })

	done := make(chan struct{})
	loop.Dispatch(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop stopped after panic")
	}
}

func TestLoopCloseDiscardsDispatch(t *testing.T) {
	loop := NewLoop(LoopConfig{})
	loop.Close()
	loop.Close()
	loop.Dispatch(func() { t.Error("dispatch after close ran") })
}
