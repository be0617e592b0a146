package main

import (
	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/keycheck"
)

var (
	keyPrefix string
	keyMinLen int
)

var keyCmd = &cobra.Command{
	Use:   "key <variable>",
	Short: "Check that an API key variable is set and looks plausible",
	Args:  cobra.ExactArgs(1),
	RunE:  runKeyCheck,
}

func init() {
	keyCmd.Flags().StringVar(&keyPrefix, "prefix", "", "expected literal prefix of the key")
	keyCmd.Flags().IntVar(&keyMinLen, "min-len", 0, "minimum plausible key length")
	rootCmd.AddCommand(keyCmd)
}

func runKeyCheck(cmd *cobra.Command, args []string) error {
	c := &keycheck.Check{
		Name:   args[0],
		Prefix: keyPrefix,
		MinLen: keyMinLen,
		Getter: &keycheck.RealEnvGetter{},
	}

	return runCheck(cmd, c)
}
