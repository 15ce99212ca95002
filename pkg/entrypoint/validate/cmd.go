package validate

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Azure/tierdeploy/pkg/entrypoint/config"
	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/topology"
)

const flagPrintTopology = "print-topology"

// NewCommand returns the cobra command for "validate".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "validate",
		Short: "Validate the topology without contacting Azure",
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cc.Flags().Bool(flagPrintTopology, false, "print the effective topology as YAML instead of the rule tables")

	return cc
}

func run(cmd *cobra.Command, args []string) error {
	common, err := config.CommonConfigFromCmd(cmd)
	if err != nil {
		return err
	}

	cfg, err := env.ConfigFromEnvironment()
	if err != nil {
		return err
	}

	t, err := config.LoadTopology(common.TopologyPath, cfg)
	if err != nil {
		return err
	}

	printTopology, err := cmd.Flags().GetBool(flagPrintTopology)
	if err != nil {
		return err
	}

	if printTopology {
		b, err := topology.Marshal(t)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "topology is valid: resource group %s in %s\n\n", t.ResourceGroup, t.Location)
	if err != nil {
		return err
	}

	return t.WriteRuleTables(cmd.OutOrStdout())
}
