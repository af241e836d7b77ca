// Copyright (C) 2025, Cryptoframe. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoframe/algokit/metadata"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered algorithms and their metadata",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := layer.ListAlgorithms()
		if listCategory != "" {
			c, err := metadata.ParseCategory(listCategory)
			if err != nil {
				return fmt.Errorf("%w: %v", errUnknownAlgorithm, err)
			}
			entries = layer.ListByCategory(c)
		}

		for _, a := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-14s %-12s %-14s vectors=%d\n",
				a.Name, a.Category, a.SecurityStatus, a.Complexity, a.VectorCount)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "filter by category (e.g. hash, aead, kdf)")
}
