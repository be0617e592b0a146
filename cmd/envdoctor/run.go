package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/verneri/envdoctor/pkg/check"
	"github.com/verneri/envdoctor/pkg/output"
)

// ErrCheckFailed is returned when a check fails.
var ErrCheckFailed = errors.New("check failed")

// runCheck executes a check, prints the result, and returns an error
// if it failed. Warnings do not produce an error. The returned error
// causes Cobra to exit with code 1.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	result := c.Run()
	output.New(cmd.OutOrStdout()).Result(result)

	if !result.OK() {
		return ErrCheckFailed
	}
	return nil
}
