package main

import (
	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/dircheck"
)

var dirCmd = &cobra.Command{
	Use:   "dir <path>...",
	Short: "Ensure directories exist and are writable",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDirCheck,
}

func init() {
	rootCmd.AddCommand(dirCmd)
}

func runDirCheck(cmd *cobra.Command, args []string) error {
	var failed bool
	for _, path := range args {
		c := &dircheck.Check{
			Path: path,
			FS:   &dircheck.RealFileSystem{},
		}
		if err := runCheck(cmd, c); err != nil {
			failed = true
		}
	}

	if failed {
		return ErrCheckFailed
	}
	return nil
}
