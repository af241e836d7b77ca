// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoframe/algokit/builtin"
	"github.com/cryptoframe/algokit/harness"
)

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run every registered algorithm's declared test vectors",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := harness.Run(builtin.Default.All())

		failed := 0
		for _, r := range summary.Reports {
			status := "ok"
			if len(r.Mismatches) > 0 {
				status = "FAIL"
				failed += len(r.Mismatches)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-20s %d/%d vectors passed\n", status, r.Name, r.Passed, r.Total)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d vectors passed in %s\n", summary.TotalPassed(), summary.TotalVectors(), summary.Duration)

		if failed > 0 {
			return fmt.Errorf("%w: %d vector(s) failed", errVectorMismatch, failed)
		}
		return nil
	},
}
