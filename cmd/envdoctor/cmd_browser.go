package main

import (
	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/browser"
	"github.com/verneri/envdoctor/pkg/browsercheck"
)

var browserBin string

var browserCmd = &cobra.Command{
	Use:   "browser",
	Short: "Check that a headless browser can launch",
	Args:  cobra.NoArgs,
	RunE:  runBrowserCheck,
}

func init() {
	browserCmd.Flags().StringVar(&browserBin, "bin", "", "browser binary to launch (default: auto-detect)")
	rootCmd.AddCommand(browserCmd)
}

func runBrowserCheck(cmd *cobra.Command, _ []string) error {
	c := &browsercheck.Check{
		Engine: &browser.RodEngine{Bin: browserBin},
	}

	return runCheck(cmd, c)
}
