package render

import "github.com/vango-dev/goey/pkg/vdom"

func isVoidElement(tag string) bool {
	return vdom.IsVoidElement(tag)
}

// inlineElements don't get newlines in pretty-printed output.
var inlineElements = map[string]bool{
	"a":      true,
	"button": true,
	"code":   true,
	"em":     true,
	"span":   true,
	"strong": true,
	"path":   true,
	"circle": true,
	"line":   true,
}

func isInlineElement(tag string) bool {
	return inlineElements[tag]
}

// booleanAttrs are written as a bare name when true and omitted when
// false.
var booleanAttrs = map[string]bool{
	"disabled": true,
	"hidden":   true,
}

func isBooleanAttr(name string) bool {
	return booleanAttrs[name]
}
