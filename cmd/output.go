package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Printer writes the human-readable output of a command.
// Colours are used only if the terminal supports them, see color.NoColor.
type Printer struct {
	w io.Writer

	section *color.Color
	ok      *color.Color
	fail    *color.Color
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		section: color.New(color.FgCyan, color.Bold),
		ok:      color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
	}
}

// Section prints a heading, separating the output of a demo from the previous one.
func (p *Printer) Section(title string) {
	p.section.Fprintf(p.w, "\n== %s ==\n", title)
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) OK(format string, args ...any) {
	p.ok.Fprintf(p.w, "✓ "+format+"\n", args...)
}

// Fail prints err. Expected failures, e.g. the rejection of invalid input, are printed like this
// so a demo can continue after them.
func (p *Printer) Fail(err error) {
	p.fail.Fprintf(p.w, "✗ %v\n", err)
}
