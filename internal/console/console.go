// Package console prints user-facing progress messages. Colors are a
// presentation convenience only; fatih/color disables them automatically when
// output is not a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	infoColor    = color.New(color.FgBlue)
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Printer writes leveled, colored lines to a writer.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New creates a Printer writing informational output to out and errors to err.
func New(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// Default returns a Printer on stdout/stderr.
func Default() *Printer {
	return New(os.Stdout, os.Stderr)
}

func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintln(p.out, infoColor.Sprintf(format, args...))
}

func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintln(p.out, successColor.Sprintf(format, args...))
}

func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintln(p.err, warnColor.Sprintf(format, args...))
}

func (p *Printer) Errorf(format string, args ...any) {
	fmt.Fprintln(p.err, errorColor.Sprintf(format, args...))
}
