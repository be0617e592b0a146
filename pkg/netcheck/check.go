package netcheck

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/verneri/envdoctor/pkg/browser"
	"github.com/verneri/envdoctor/pkg/check"
)

const (
	// DefaultURL is the connectivity probe target.
	DefaultURL = "https://example.com"
	// DefaultTimeout bounds the navigation step only.
	DefaultTimeout = 10 * time.Second
)

// Check verifies outbound network reachability by loading a well-known
// page in a headless browser.
type Check struct {
	URL     string         // target URL (default: DefaultURL)
	Timeout time.Duration  // navigation timeout (default: 10s)
	Engine  browser.Engine // injected for testing
}

// Run executes the network reachability check.
func (c *Check) Run() check.Result {
	target := c.URL
	if target == "" {
		target = DefaultURL
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	result := check.Result{
		Name: fmt.Sprintf("net: %s", target),
	}

	parsed, err := url.Parse(target)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return result.Failf("invalid URL: %s", target)
	}

	inst, err := c.Engine.Launch(context.Background())
	if err != nil {
		return result.Fail("no network connectivity detected", err)
	}
	defer func() { _ = inst.Close() }()

	// Navigation errors (timeout, DNS, refused) all collapse into the
	// same generic message; the raw error stays on Result.Err unprinted.
	if err := inst.Navigate(target, timeout); err != nil {
		return result.Fail("no network connectivity detected", err)
	}

	result.AddDetailf("reached %s", target)
	return result.Pass()
}
