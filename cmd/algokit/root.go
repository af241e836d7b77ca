// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cryptoframe/algokit/builtin"
	"github.com/cryptoframe/algokit/external"
)

// Exit codes per the embedding API's CLI surface contract.
const (
	exitSuccess            = 0
	exitUnknownAlgorithm   = 2
	exitParameterInvalid   = 3
	exitVectorMismatch     = 4
)

var errUnknownAlgorithm = errors.New("algokit: unknown algorithm")
var errVectorMismatch = errors.New("algokit: vector mismatch")

// layer is the process-wide external interface layer, backed by every
// descriptor this repository ships (builtin.Default). A real embedder
// would build its own registry from config.Config's enabled categories
// instead of always using the full default set; the demo shell keeps it
// simple and always exposes everything.
var layer = external.New(builtin.Default)

var rootCmd = &cobra.Command{
	Use:   "algokit",
	Short: "Inspect and drive the registered cryptographic algorithms",
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(testCmd)
}

// exitCodeFor maps an error returned from command execution to the CLI
// surface's declared exit codes.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, errUnknownAlgorithm):
		return exitUnknownAlgorithm
	case errors.Is(err, errVectorMismatch):
		return exitVectorMismatch
	case err != nil:
		return exitParameterInvalid
	default:
		return exitSuccess
	}
}
