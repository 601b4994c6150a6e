// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ava-labs/goblinsim/config"
)

// main is the primary entry point to goblinsim.
func main() {
	rootCmd := newCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "goblinsim failed: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "goblinsim",
		Short:        "Simulates goblins being born, earning gold and dying",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runFunc,
	}
	cmd.Flags().AddFlagSet(config.BuildFlagSet())
	return cmd
}
