// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The XSDscrape Authors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/martikudelova/XSDscrape/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.Info())
		},
	}
}
