// Package renderer formats the engine's report aggregates as markdown.
// Reports stay plain data; every presentation decision lives here so the
// same aggregate can feed the terminal, a file or a chat message.
package renderer

import (
	"fmt"
	"strings"
)

// reportBuilder formats a report into a markdown string.
type reportBuilder struct {
	*strings.Builder
}

func newReportBuilder() *reportBuilder {
	return &reportBuilder{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the builder's buffer.
func (r *reportBuilder) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
