package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

func init() {
	// Colors only make sense on an interactive terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
	}
}

// Printer writes human-oriented command output.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

// NewPrinter returns a Printer writing to out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{Out: out}
}

func (p *Printer) writer() io.Writer {
	if p.Out == nil {
		return os.Stdout
	}
	return p.Out
}

// Section prints a section header.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	pterm.DefaultSection.WithWriter(p.writer()).Println(title)
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	pterm.Info.WithWriter(p.writer()).Println(msg)
}

// Success prints a success line.
func (p *Printer) Success(msg string) {
	if p.Quiet {
		return
	}
	pterm.Success.WithWriter(p.writer()).Println(msg)
}

// Error prints an error line. It is shown even in quiet mode.
func (p *Printer) Error(msg string) {
	pterm.Error.WithWriter(p.writer()).Println(msg)
}

// Printf writes formatted output unconditionally.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.writer(), format, args...)
}

// Table renders rows with the first row as header.
func (p *Printer) Table(rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	return pterm.DefaultTable.
		WithHasHeader().
		WithData(rows).
		WithWriter(p.writer()).
		Render()
}
