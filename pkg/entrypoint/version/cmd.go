package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/tierdeploy/pkg/util/version"
)

// NewCommand returns the cobra command for "version".
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the git commit tierdeploy was built from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "tierdeploy %s\n", version.GitCommit)
			return err
		},
	}
}
