package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vango-dev/goey/pkg/vdom"
)

func render(t *testing.T, node *vdom.VNode) string {
	t.Helper()
	out, err := NewRenderer(RendererConfig{}).RenderToString(node)
	if err != nil {
		t.Fatalf("RenderToString: %v", err)
	}
	return out
}

func TestRenderElements(t *testing.T) {
	tests := []struct {
		name string
		node *vdom.VNode
		want string
	}{
		{"text escaped", vdom.Span(vdom.Text(`<b> & "q"`)), `<span>&lt;b&gt; &amp; &quot;q&quot;</span>`},
		{"attrs sorted", vdom.Div(vdom.Role("status"), vdom.Class("goey"), vdom.AriaAtomic(true)), `<div aria-atomic="true" class="goey" role="status"></div>`},
		{"boolean attr", vdom.Button(vdom.Disabled(), vdom.Type("button")), `<button disabled type="button"></button>`},
		{"empty attr skipped", vdom.Div(vdom.Class(""), vdom.Data("center", "")), `<div></div>`},
		{"svg self closes", vdom.Svg(vdom.Path(vdom.D("M0 0 Z"), vdom.StrokeWidth(1.5))), `<svg><path d="M0 0 Z" stroke-width="1.5"/></svg>`},
		{"void element", vdom.Div(vdom.Br()), `<div><br></div>`},
		{"attr newline escaped", vdom.Div(vdom.TitleAttr("a\nb")), `<div title="a&#10;b"></div>`},
		{"raw", vdom.Div(vdom.Raw(`<svg/>`)), `<div><svg/></div>`},
		{"fragment", vdom.Fragment(vdom.Span(), "x"), `<span></span>x`},
		{"component", vdom.Div(vdom.Func(func() *vdom.VNode { return vdom.P(vdom.Text("c")) })), `<div><p>c</p></div>`},
		{"nil", nil, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(t, tt.node); got != tt.want {
				t.Errorf("got  %s\nwant %s", got, tt.want)
			}
		})
	}
}

func TestRenderPretty(t *testing.T) {
	r := NewRenderer(RendererConfig{Pretty: true})
	out, err := r.RenderToString(vdom.Div(vdom.Div(vdom.Span(vdom.Text("t")))))
	if err != nil {
		t.Fatal(err)
	}
	want := "<div>\n  <div>\n    <span>t</span>\n  </div>\n</div>\n"
	if out != want {
		t.Errorf("pretty output:\n%q\nwant\n%q", out, want)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestRenderWriterError(t *testing.T) {
	err := NewRenderer(RendererConfig{}).RenderToWriter(&failingWriter{n: 2}, vdom.Div(vdom.Span(vdom.Text("x"))))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("err = %v", err)
	}
}

func TestRenderUnknownKind(t *testing.T) {
	_, err := NewRenderer(RendererConfig{}).RenderToString(&vdom.VNode{Kind: 42})
	if err == nil {
		t.Error("expected an error for an unknown kind")
	}
}
