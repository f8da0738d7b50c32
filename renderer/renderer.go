// Package renderer formats tracker data as markdown strings. It only
// formats: all numbers are computed by the goldtrack package, and the
// resulting markdown is rendered to the terminal by the command layer.
package renderer

import (
	"fmt"
	"strings"
)

// markdownRenderer accumulates a markdown document.
type markdownRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *markdownRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

func newRenderer() *markdownRenderer {
	return &markdownRenderer{Builder: &strings.Builder{}}
}
