package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/browser"
	"github.com/verneri/envdoctor/pkg/netcheck"
)

var netTimeout time.Duration

var netCmd = &cobra.Command{
	Use:   "net [url]",
	Short: "Check outbound network reachability through a headless browser",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNetCheck,
}

func init() {
	netCmd.Flags().DurationVar(&netTimeout, "timeout", netcheck.DefaultTimeout, "navigation timeout")
	rootCmd.AddCommand(netCmd)
}

func runNetCheck(cmd *cobra.Command, args []string) error {
	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	c := &netcheck.Check{
		URL:     target,
		Timeout: netTimeout,
		Engine:  &browser.RodEngine{},
	}

	return runCheck(cmd, c)
}
