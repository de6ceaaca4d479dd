// Package output renders validation results to a terminal in a
// colourised-console style, one ValidationResult per record.
package output

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/Fmanuel809/validra-sub002/pkg/diagnose"
	"github.com/Fmanuel809/validra-sub002/pkg/validresult"
)

const outputLineWidth = 60

// Stats summarises a run across many records, for the trailer line.
type Stats struct {
	RecordsValidated int
	RecordsFailed    int
	Duration         float64
}

// ConsoleWriter renders ValidationResults with colour.
type ConsoleWriter struct {
	writer  io.Writer
	noColor bool
}

// NewConsoleWriter creates a writer over os.Stdout.
func NewConsoleWriter() *ConsoleWriter {
	return &ConsoleWriter{writer: os.Stdout}
}

// WithWriter sets a custom writer.
func (c *ConsoleWriter) WithWriter(w io.Writer) *ConsoleWriter {
	c.writer = w
	return c
}

// WithNoColor disables ANSI colour.
func (c *ConsoleWriter) WithNoColor(v bool) *ConsoleWriter {
	c.noColor = v
	if v {
		color.NoColor = true
	}
	return c
}

// Write renders one record's result.
func (c *ConsoleWriter) Write(result *validresult.Result) error {
	if result.IsValid {
		green := color.New(color.FgGreen, color.Bold)
		green.Fprintln(c.writer, "valid")
		return nil
	}

	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(c.writer, "invalid (%d error%s)\n", result.ErrorCount(), plural(result.ErrorCount()))

	fields := make([]string, 0, len(result.Errors))
	for f := range result.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		cyan := color.New(color.FgCyan, color.Bold)
		cyan.Fprintf(c.writer, "  %s\n", field)
		for _, d := range result.Errors[field] {
			c.writeDiagnostic(d)
		}
	}
	return nil
}

func (c *ConsoleWriter) writeDiagnostic(d *diagnose.Diagnostic) {
	gray := color.New(color.FgHiBlack)
	var kindColor *color.Color
	switch d.Kind {
	case diagnose.KindTypeMismatch:
		kindColor = color.New(color.FgYellow)
	default:
		kindColor = color.New(color.FgRed)
	}

	kindColor.Fprintf(c.writer, "    [%s] ", d.Kind)
	fmt.Fprintf(c.writer, "%s ", d.Message)
	gray.Fprintf(c.writer, "(%s)\n", d.Op)
}

// WriteSummary renders a final trailer line across an entire run.
func (c *ConsoleWriter) WriteSummary(stats Stats) {
	fmt.Fprintln(c.writer, strings.Repeat("-", outputLineWidth))
	fmt.Fprintf(c.writer, "validated: %d | failed: %d | duration: %.2fs\n",
		stats.RecordsValidated, stats.RecordsFailed, stats.Duration)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
