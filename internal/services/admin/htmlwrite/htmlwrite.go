// Package htmlwrite writes hand-built templ component markup.
package htmlwrite

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer keeps the first write error and turns later writes into no-ops.
type Writer struct {
	w   io.Writer
	err error
}

// New returns a writer over w.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (h *Writer) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes s HTML-escaped.
func (h *Writer) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// URL writes s as a sanitized, escaped attribute URL.
func (h *Writer) URL(s string) {
	h.Text(string(templ.URL(s)))
}

// Component renders c in place. A nil component writes nothing.
func (h *Writer) Component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

// Err returns the first error seen.
func (h *Writer) Err() error {
	return h.err
}
