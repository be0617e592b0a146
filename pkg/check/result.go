package check

// Status represents the outcome of a check.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "key: ANTHROPIC_API_KEY", "dir: screenshots"
	Status  Status   // PASS, WARN, or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check did not fail. Warnings still count as OK
// for exit-code purposes.
func (r Result) OK() bool {
	return r.Status != StatusFail
}

// Warned returns true if the check completed with a warning.
func (r Result) Warned() bool {
	return r.Status == StatusWarn
}
