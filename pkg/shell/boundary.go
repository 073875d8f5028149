package shell

import (
	"fmt"

	"github.com/vango-dev/goey/internal/errors"
	"github.com/vango-dev/goey/pkg/vdom"
)

// Boundary wraps content so a panic while rendering it is reported and
// renders nothing. report may be nil.
func Boundary(content vdom.Component, report func(error)) vdom.Component {
	return vdom.Func(func() (node *vdom.VNode) {
		if content == nil {
			return nil
		}
		defer func() {
			if r := recover(); r != nil {
				node = nil
				if report != nil {
					report(errors.New("G002").Wrap(fmt.Errorf("%v", r)))
				}
			}
		}()
		node = content.Render()
		// Expand nested components now so their panics land here too.
		return materialize(node)
	})
}

func materialize(n *vdom.VNode) *vdom.VNode {
	if n == nil {
		return nil
	}
	if n.Kind == vdom.KindComponent {
		if n.Comp == nil {
			return nil
		}
		return materialize(n.Comp.Render())
	}
	if len(n.Children) == 0 {
		return n
	}
	out := *n
	out.Children = make([]*vdom.VNode, 0, len(n.Children))
	for _, c := range n.Children {
		if m := materialize(c); m != nil {
			out.Children = append(out.Children, m)
		}
	}
	return &out
}
