package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"

	"github.com/Azure/tierdeploy/pkg/deploy"
	"github.com/Azure/tierdeploy/pkg/entrypoint/config"
	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/preflight"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armsubscriptions"
	utillog "github.com/Azure/tierdeploy/pkg/util/log"
)

// NewCommand returns the cobra command for "deploy".
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Provision the three-tier network and virtual machines",
		Long: "Checks the local prerequisites, provisions the resource group, network security " +
			"groups, virtual network and virtual machines, then reports how to reach them.",
		Args: cobra.NoArgs,
		RunE: Run,
	}
}

// Run performs a full deployment. It also serves as the root command.
func Run(cmd *cobra.Command, args []string) error {
	common, err := config.CommonConfigFromCmd(cmd)
	if err != nil {
		return err
	}

	cfg, err := env.ConfigFromEnvironment()
	if err != nil {
		return err
	}

	topo, err := config.LoadTopology(common.TopologyPath, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	log := utillog.GetLogger(common.LogLevel)

	core, err := env.NewCore(log, cfg)
	if err != nil {
		return err
	}

	subscriptions, err := armsubscriptions.NewSubscriptionsClient(core.Credential(), core.ClientOptions())
	if err != nil {
		return err
	}

	pre, err := preflight.Run(ctx, utillog.WithComponent(log, "preflight"), subscriptions, cfg.SubscriptionID, topo.SSHKeyPath)
	if err != nil {
		return err
	}

	d, err := deploy.New(utillog.WithComponent(log, "deploy"), core, topo, &deploy.Config{
		SubscriptionID: pre.SubscriptionID,
		SSHPublicKey:   pre.SSHPublicKey,
		VMWaitTimeout:  cfg.VMWaitTimeout,
		VMPollInterval: cfg.VMPollInterval,
		OutputDir:      cfg.OutputDir,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return d.Deploy(ctx)
}
