package main

import (
	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/runtimecheck"
)

var runtimeMinMajor int

var runtimeCmd = &cobra.Command{
	Use:   "runtime",
	Short: "Check the Node.js runtime version",
	Args:  cobra.NoArgs,
	RunE:  runRuntimeCheck,
}

func init() {
	runtimeCmd.Flags().IntVar(&runtimeMinMajor, "min-major", runtimecheck.DefaultMinMajor, "minimum Node.js major version")
	rootCmd.AddCommand(runtimeCmd)
}

func runRuntimeCheck(cmd *cobra.Command, _ []string) error {
	c := &runtimecheck.Check{
		MinMajor:    runtimeMinMajor,
		ManifestDir: ".",
		Runner:      &runtimecheck.RealRunner{},
		Files:       &runtimecheck.RealFileReader{},
	}

	return runCheck(cmd, c)
}
