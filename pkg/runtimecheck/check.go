package runtimecheck

import (
	"path/filepath"

	"github.com/tidwall/gjson"

	"github.com/verneri/envdoctor/pkg/check"
	"github.com/verneri/envdoctor/pkg/version"
)

// DefaultMinMajor is the minimum Node.js major version the toolchain supports.
const DefaultMinMajor = 18

// Check verifies the Node.js runtime version.
type Check struct {
	MinMajor    int        // minimum major version (default: 18)
	ManifestDir string     // directory to look for package.json in ("" = skip)
	Runner      Runner     // injected for testing
	Files       FileReader // injected for testing
}

// Run executes the runtime version check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "runtime: node",
	}

	minMajor := c.MinMajor
	if minMajor == 0 {
		minMajor = DefaultMinMajor
	}

	path, err := c.Runner.LookPath("node")
	if err != nil {
		result.AddDetail("fix: install Node.js from https://nodejs.org")
		return result.Failf("node not found in PATH")
	}
	result.AddDetailf("path: %s", path)

	stdout, stderr, err := c.Runner.RunCommand("node", "--version")
	if err != nil {
		return result.Failf("node --version failed: %v", err)
	}

	output := stdout
	if output == "" {
		output = stderr
	}

	v, err := version.Extract(output)
	if err != nil {
		return result.Failf("could not parse version from output: %v", err)
	}
	result.AddDetailf("version: %s", v)

	c.addEngineDetail(&result)

	if !v.GreaterThanOrEqual(version.Version{Major: minMajor}) {
		result.AddDetailf("fix: upgrade to Node.js %d or newer", minMajor)
		return result.Failf("version %s < required %d", v, minMajor)
	}

	return result.Pass()
}

// addEngineDetail reports the engines.node constraint declared in
// package.json, when one exists. Informational only; the pass/fail
// threshold stays MinMajor.
func (c *Check) addEngineDetail(result *check.Result) {
	if c.ManifestDir == "" || c.Files == nil {
		return
	}
	data, err := c.Files.ReadFile(filepath.Join(c.ManifestDir, "package.json"))
	if err != nil {
		return
	}
	engine := gjson.GetBytes(data, "engines.node")
	if engine.Exists() {
		result.AddDetailf("package.json engines.node: %s", engine.String())
	}
}
