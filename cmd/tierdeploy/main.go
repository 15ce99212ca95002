package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Azure/tierdeploy/pkg/entrypoint/config"
	"github.com/Azure/tierdeploy/pkg/entrypoint/deploy"
	"github.com/Azure/tierdeploy/pkg/entrypoint/report"
	"github.com/Azure/tierdeploy/pkg/entrypoint/validate"
	"github.com/Azure/tierdeploy/pkg/entrypoint/version"
	utillog "github.com/Azure/tierdeploy/pkg/util/log"
)

// usageError marks errors in the command line itself.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageArgs(args cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, a []string) error {
		if args == nil {
			return nil
		}
		if err := args(cmd, a); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tierdeploy",
		Short: "Provision a three-tier network and virtual machines on Azure",
		Long: "tierdeploy provisions a web, app and db tier on Azure, each in its own subnet behind " +
			"its own network security group, with one Linux virtual machine per tier. " +
			"Without a subcommand it runs deploy.",
		Args:          cobra.NoArgs,
		RunE:          deploy.Run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		deploy.NewCommand(),
		report.NewCommand(),
		validate.NewCommand(),
		version.NewCommand(),
	)

	for _, c := range append(root.Commands(), root) {
		c.Args = usageArgs(c.Args)
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return root
}

// exitCode maps the result of a run to the process exit code.
func exitCode(err error) int {
	var uerr *usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &uerr):
		return 2
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCommand().ExecuteContext(ctx)

	switch exitCode(err) {
	case 0:
	case 2:
		fmt.Fprintf(os.Stderr, "Error: %v\nRun 'tierdeploy --help' for usage.\n", err)
		stop()
		os.Exit(2)
	default:
		stop()
		utillog.GetLogger("info").Fatal(err)
	}
}
