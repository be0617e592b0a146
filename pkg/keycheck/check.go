package keycheck

import (
	"fmt"
	"strings"

	"github.com/verneri/envdoctor/pkg/check"
)

// Check validates an API key stored in an environment variable.
// A missing or empty key fails; a key that is present but does not look
// right (wrong prefix, suspiciously short) only warns, since some
// providers issue keys outside the documented format.
type Check struct {
	Name   string    // env var name
	Prefix string    // expected literal prefix ("" = no prefix heuristic)
	MinLen int       // minimum plausible key length (0 = no length heuristic)
	Getter EnvGetter // injected for testing
}

// Run executes the API key check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: fmt.Sprintf("key: %s", c.Name),
	}

	value, exists := c.Getter.LookupEnv(c.Name)
	value = strings.TrimSpace(value)

	if !exists || value == "" {
		result.AddDetailf("fix: export %s=<your key>", c.Name)
		return result.Fail("not set", fmt.Errorf("environment variable %s is not set", c.Name))
	}

	result.AddDetailf("value: %s", maskValue(value))

	if c.Prefix != "" && !strings.HasPrefix(value, c.Prefix) {
		return result.Warnf("value does not start with %q", c.Prefix)
	}

	if c.MinLen > 0 && len(value) < c.MinLen {
		return result.Warnf("value length %d < expected minimum %d", len(value), c.MinLen)
	}

	return result.Pass()
}

// maskValue shows the first and last 3 characters of a secret.
// Short values are masked entirely.
func maskValue(value string) string {
	if len(value) <= 6 {
		return "•••"
	}
	return value[:3] + "•••" + value[len(value)-3:]
}
