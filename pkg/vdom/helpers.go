package vdom

import (
	"fmt"
	"strings"
)

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{Kind: KindText, Text: content}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped markup node. Only use it for trusted markup
// such as built-in icons.
func Raw(markup string) *VNode {
	return &VNode{Kind: KindRaw, Text: markup}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *VNode {
	node := createElement("", children)
	node.Kind = KindFragment
	node.Props = nil
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but only builds the node when condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() *VNode {
	return nil
}

// Range maps a slice to VNodes.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Walk visits node and its descendants depth first, expanding
// components. Returning false from fn skips a node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if node.Kind == KindComponent {
		if node.Comp != nil {
			Walk(node.Comp.Render(), fn)
		}
		return
	}
	if !fn(node) {
		return
	}
	for _, c := range node.Children {
		Walk(c, fn)
	}
}

// Find returns the first element with the given class.
func Find(node *VNode, class string) *VNode {
	var found *VNode
	Walk(node, func(n *VNode) bool {
		if found != nil {
			return false
		}
		if n.Kind == KindElement && n.HasClass(class) {
			found = n
			return false
		}
		return true
	})
	return found
}

// TextContent concatenates the text of node and its descendants.
func TextContent(node *VNode) string {
	var sb strings.Builder
	Walk(node, func(n *VNode) bool {
		if n.Kind == KindText {
			sb.WriteString(n.Text)
		}
		return true
	})
	return sb.String()
}
