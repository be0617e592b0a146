// Package doctor runs the fixed diagnostic sequence and aggregates
// the results into a report and an exit code.
package doctor

import (
	"github.com/verneri/envdoctor/pkg/browser"
	"github.com/verneri/envdoctor/pkg/browsercheck"
	"github.com/verneri/envdoctor/pkg/check"
	"github.com/verneri/envdoctor/pkg/dircheck"
	"github.com/verneri/envdoctor/pkg/keycheck"
	"github.com/verneri/envdoctor/pkg/netcheck"
	"github.com/verneri/envdoctor/pkg/output"
	"github.com/verneri/envdoctor/pkg/runtimecheck"
)

// Fixed parameters of the full diagnostic run.
const (
	PrimaryKeyVar      = "ANTHROPIC_API_KEY"
	PrimaryKeyPrefix   = "sk-ant-"
	PrimaryKeyMinLen   = 50
	SecondaryKeyVar    = "OPENAI_API_KEY"
	SecondaryKeyMinLen = 30
)

// Doctor holds the collaborators for a full diagnostic run.
// Zero-value fields are filled with real implementations by New.
type Doctor struct {
	Env    keycheck.EnvGetter
	FS     dircheck.FileSystem
	Runner runtimecheck.Runner
	Files  runtimecheck.FileReader
	Engine browser.Engine
	Dirs   []string
}

// New returns a Doctor wired to the real environment.
func New() *Doctor {
	return &Doctor{
		Env:    &keycheck.RealEnvGetter{},
		FS:     &dircheck.RealFileSystem{},
		Runner: &runtimecheck.RealRunner{},
		Files:  &runtimecheck.RealFileReader{},
		Engine: &browser.RodEngine{},
		Dirs:   dircheck.DefaultDirs,
	}
}

// Checks returns the probe sequence in its fixed execution order.
// The directory probe expands to one checker per configured path.
func (d *Doctor) Checks() []check.Checker {
	checks := []check.Checker{
		&runtimecheck.Check{ManifestDir: ".", Runner: d.Runner, Files: d.Files},
		&keycheck.Check{
			Name:   PrimaryKeyVar,
			Prefix: PrimaryKeyPrefix,
			MinLen: PrimaryKeyMinLen,
			Getter: d.Env,
		},
		&keycheck.Check{
			Name:   SecondaryKeyVar,
			MinLen: SecondaryKeyMinLen,
			Getter: d.Env,
		},
	}
	for _, dir := range d.Dirs {
		checks = append(checks, &dircheck.Check{Path: dir, FS: d.FS})
	}
	checks = append(checks,
		&browsercheck.Check{Engine: d.Engine},
		&netcheck.Check{Engine: d.Engine},
	)
	return checks
}

// Run executes every probe in order, printing each result as it
// completes. A failing probe never aborts the ones after it.
func (d *Doctor) Run(p *output.Printer) []check.Result {
	checks := d.Checks()
	results := make([]check.Result, 0, len(checks))
	for _, c := range checks {
		r := c.Run()
		p.Result(r)
		results = append(results, r)
	}
	return results
}

// Summary holds aggregate counts over a results sequence.
type Summary struct {
	Passed int
	Warned int
	Failed int
	Total  int
}

// Summarize partitions results by status. Pure counting, so the
// result order does not matter.
func Summarize(results []check.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Status {
		case check.StatusPass:
			s.Passed++
		case check.StatusWarn:
			s.Warned++
		default:
			s.Failed++
		}
	}
	return s
}

// OK returns true when no probe failed.
func (s Summary) OK() bool {
	return s.Failed == 0
}

// Report prints the closing banner and returns the process exit code.
func Report(p *output.Printer, results []check.Result) int {
	s := Summarize(results)
	if s.OK() {
		p.Success(s.Passed, s.Total, s.Warned)
		return 0
	}
	p.Failure(s.Failed)
	return 1
}
