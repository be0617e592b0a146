package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/doctor"
	"github.com/verneri/envdoctor/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "envdoctor",
	Short:         "Sanity checks for your local development environment",
	Long:          "Envdoctor verifies API keys, workspace directories, the Node.js runtime,\nheadless browser availability, and network reachability before the\nbrowser-automation toolchain is used.",
	Version:       Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDoctor,
}

// runDoctor executes the full fixed probe sequence. Bare invocation
// takes no flags; individual probes are available as subcommands.
func runDoctor(cmd *cobra.Command, _ []string) error {
	p := output.New(cmd.OutOrStdout())
	p.Header("envdoctor: development environment diagnostics")

	results := doctor.New().Run(p)
	if doctor.Report(p, results) != 0 {
		return ErrCheckFailed
	}
	return nil
}
