package report

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

// NewCommand returns the cobra command for "report".
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Report the addresses of an existing deployment",
		Long: "Reads the current addresses of the deployed virtual machines, prints how to reach " +
			"them and rewrites test-connectivity.sh and DEPLOYMENT.md. Nothing is created.",
		Args: cobra.NoArgs,
		RunE: run,
	}
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

	topo, err := config.LoadTopology(common.TopologyPath, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	log := utillog.GetLogger(common.LogLevel)

	err = preflight.CheckCLI()
	if err != nil {
		return err
	}

	core, err := env.NewCore(log, cfg)
	if err != nil {
		return err
	}

	subscriptions, err := armsubscriptions.NewSubscriptionsClient(core.Credential(), core.ClientOptions())
	if err != nil {
		return err
	}

	subscriptionID, err := preflight.CheckSession(ctx, log, subscriptions, cfg.SubscriptionID)
	if err != nil {
		return err
	}

	d, err := deploy.New(utillog.WithComponent(log, "report"), core, topo, &deploy.Config{
		SubscriptionID: subscriptionID,
		VMWaitTimeout:  cfg.VMWaitTimeout,
		VMPollInterval: cfg.VMPollInterval,
		OutputDir:      cfg.OutputDir,
	}, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	return d.Report(ctx)
}
