// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoframe/algokit/algorithm"
	"github.com/cryptoframe/algokit/builtin"
)

var (
	runKeyHex    string
	runIVHex     string
	runAADHex    string
	runInHex     string
	runOutHex    bool
	runInvert    bool
	runOutputLen int
)

var runCmd = &cobra.Command{
	Use:   "run <name>",
	Short: "Feed input through one registered algorithm and print its result",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		d, ok := builtin.Default.Find(name)
		if !ok {
			return fmt.Errorf("%w: %s", errUnknownAlgorithm, name)
		}

		inst, err := d.CreateInstance(runInvert)
		if err != nil {
			return fmt.Errorf("%w: %v", errUnknownAlgorithm, err)
		}

		if err := applyHexFlags(inst, d); err != nil {
			return err
		}

		input, err := hex.DecodeString(runInHex)
		if err != nil {
			return fmt.Errorf("algokit: --in-hex: %v", err)
		}
		if err := inst.Feed(input); err != nil {
			return fmt.Errorf("algokit: Feed: %v", err)
		}

		result, err := inst.Result()
		if err != nil {
			return fmt.Errorf("algokit: Result: %v", err)
		}

		if runOutHex {
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(result))
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result)
		}
		return nil
	},
}

func applyHexFlags(inst algorithm.Instance, d *algorithm.Descriptor) error {
	if runKeyHex != "" {
		key, err := hex.DecodeString(runKeyHex)
		if err != nil {
			return fmt.Errorf("algokit: --key: %v", err)
		}
		if kt, ok := inst.(algorithm.Keyed); ok {
			if err := kt.SetKey(key); err != nil {
				return fmt.Errorf("algokit: %s SetKey: %v", d.Name, err)
			}
		}
	}
	if runIVHex != "" {
		iv, err := hex.DecodeString(runIVHex)
		if err != nil {
			return fmt.Errorf("algokit: --iv: %v", err)
		}
		if ivt, ok := inst.(algorithm.IVSetter); ok {
			if err := ivt.SetIV(iv); err != nil {
				return fmt.Errorf("algokit: %s SetIV: %v", d.Name, err)
			}
		}
	}
	if runAADHex != "" {
		aad, err := hex.DecodeString(runAADHex)
		if err != nil {
			return fmt.Errorf("algokit: --aad: %v", err)
		}
		if at, ok := inst.(algorithm.AADSetter); ok {
			if err := at.SetAAD(aad); err != nil {
				return fmt.Errorf("algokit: %s SetAAD: %v", d.Name, err)
			}
		}
	}
	if runOutputLen > 0 {
		if ot, ok := inst.(algorithm.OutputSizer); ok {
			if err := ot.SetOutputSize(runOutputLen); err != nil {
				return fmt.Errorf("algokit: %s SetOutputSize: %v", d.Name, err)
			}
		}
	}
	return nil
}

func init() {
	runCmd.Flags().StringVar(&runKeyHex, "key", "", "hex-encoded key")
	runCmd.Flags().StringVar(&runIVHex, "iv", "", "hex-encoded IV/nonce")
	runCmd.Flags().StringVar(&runAADHex, "aad", "", "hex-encoded associated data (AEAD only)")
	runCmd.Flags().StringVar(&runInHex, "in-hex", "", "hex-encoded input")
	runCmd.Flags().BoolVar(&runOutHex, "out-hex", false, "print output as hex instead of raw bytes")
	runCmd.Flags().BoolVar(&runInvert, "inverse", false, "run the inverse direction (decrypt/verify)")
	runCmd.Flags().IntVar(&runOutputLen, "output-size", 0, "requested output size in bytes, where applicable")
}
