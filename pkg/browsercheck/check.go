package browsercheck

import (
	"context"

	"github.com/verneri/envdoctor/pkg/browser"
	"github.com/verneri/envdoctor/pkg/check"
)

// Check verifies that a headless browser can launch and shut down.
type Check struct {
	Engine browser.Engine // injected for testing
}

// Run executes the browser availability check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "browser: headless launch",
	}

	inst, err := c.Engine.Launch(context.Background())
	if err != nil {
		result.AddDetail("fix: install Chromium, or set a browser path and re-run")
		return result.Failf("launch failed: %v", err)
	}

	if v, err := inst.Version(); err == nil && v != "" {
		result.AddDetailf("version: %s", v)
	}

	if err := inst.Close(); err != nil {
		return result.Failf("close failed: %v", err)
	}

	return result.Pass()
}
