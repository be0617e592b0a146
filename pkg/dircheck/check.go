package dircheck

import (
	"fmt"

	"github.com/verneri/envdoctor/pkg/check"
)

// DefaultDirs are the workspace directories the toolchain writes into.
var DefaultDirs = []string{"screenshots", "logs"}

// Check ensures a directory exists and is writable.
type Check struct {
	Path string     // directory path, created recursively if missing
	FS   FileSystem // injected for testing
}

// Run executes the directory check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("dir: %s", c.Path),
	}

	if err := c.FS.MkdirAll(c.Path, 0o755); err != nil {
		return result.Fail(fmt.Sprintf("cannot create directory: %v", err), err)
	}

	if err := c.FS.WriteProbe(c.Path); err != nil {
		return result.Fail(fmt.Sprintf("not writable: %v", err), err)
	}

	result.AddDetail("writable")
	return result.Pass()
}
