package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/tally/pkg/domain"
)

// Printer renders states to an output stream. When the stream is a terminal
// it applies color; otherwise the output is the bare canonical form, so piped
// output stays byte-exact.
type Printer struct {
	out     io.Writer
	profile termenv.Profile
	color   bool
}

// NewPrinter creates a printer for the given stream.
func NewPrinter(out io.Writer) *Printer {
	p := &Printer{out: out, profile: termenv.Ascii}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.profile = termenv.ColorProfile()
		p.color = true
	}
	return p
}

// State prints one state line in the canonical "{ count: N }" form.
func (p *Printer) State(s domain.State) {
	line := s.String()
	if p.color {
		line = termenv.String(line).Foreground(p.profile.Color("#818cf8")).String()
	}
	fmt.Fprintln(p.out, line)
}
