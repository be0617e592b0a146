package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the environment
// and returns a Result indicating pass, warn, or fail.
//
// Implementations:
//   - keycheck.Check: validates API key environment variables
//   - dircheck.Check: ensures directories exist and are writable
//   - runtimecheck.Check: verifies the Node.js runtime version
//   - browsercheck.Check: verifies a headless browser can launch
//   - netcheck.Check: verifies outbound network reachability
type Checker interface {
	Run() Result
}
