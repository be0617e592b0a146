package output

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/go-supportscolor"

	"github.com/verneri/envdoctor/pkg/check"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, reset = "", "", "", ""
	}
}

// Printer renders check results and summary banners.
type Printer struct {
	Out io.Writer
}

// New returns a Printer writing to w, defaulting to stdout.
func New(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{Out: w}
}

// Result outputs a check result with a colored status icon.
func (p *Printer) Result(r check.Result) {
	switch r.Status {
	case check.StatusPass:
		fmt.Fprintf(p.Out, "%s✓%s %s\n", green, reset, r.Name)
	case check.StatusWarn:
		fmt.Fprintf(p.Out, "%s⚠%s %s\n", yellow, reset, r.Name)
	default:
		fmt.Fprintf(p.Out, "%s✗%s %s\n", red, reset, r.Name)
	}
	for _, d := range r.Details {
		fmt.Fprintf(p.Out, "    %s\n", d)
	}
}

// Header outputs the opening banner.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.Out, "%s\n\n", title)
}

// Success outputs the all-clear banner with pass counts and an
// optional warning note.
func (p *Printer) Success(passed, total, warnings int) {
	fmt.Fprintf(p.Out, "\n%sAll checks passed (%d/%d)%s\n", green, passed, total, reset)
	if warnings == 1 {
		fmt.Fprintf(p.Out, "%s1 warning, see above%s\n", yellow, reset)
	} else if warnings > 1 {
		fmt.Fprintf(p.Out, "%s%d warnings, see above%s\n", yellow, warnings, reset)
	}
}

// Failure outputs the failure banner with a remediation hint.
func (p *Printer) Failure(failed int) {
	fmt.Fprintf(p.Out, "\n%s%d CHECK(S) FAILED%s\n", red, failed, reset)
	fmt.Fprintln(p.Out, "Fix the issues above and re-run envdoctor.")
}
