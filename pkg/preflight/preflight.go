package preflight

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	sdkarmsubscriptions "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/sirupsen/logrus"

	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armsubscriptions"
	"github.com/Azure/tierdeploy/pkg/util/azureerrors"
	"github.com/Azure/tierdeploy/pkg/util/steps"
)

const cliName = "az"

var lookPath = exec.LookPath

// Result is what the deployment needs from a successful preflight.
type Result struct {
	SubscriptionID string
	SSHPublicKey   string
}

// Run checks the local prerequisites of a deployment in order: the az CLI,
// a usable login session and an SSH key pair. No check is retried.
func Run(ctx context.Context, log *logrus.Entry, subscriptions armsubscriptions.SubscriptionsClient, subscriptionID, sshKeyPath string) (*Result, error) {
	r := &Result{}

	_, err := steps.Run(ctx, log, []steps.Step{
		steps.WrappedAction(CheckCLI, func(context.Context) error { return CheckCLI() }),
		steps.WrappedAction(CheckSession, func(ctx context.Context) (err error) {
			r.SubscriptionID, err = CheckSession(ctx, log, subscriptions, subscriptionID)
			return err
		}),
		steps.WrappedAction(EnsureSSHKey, func(context.Context) (err error) {
			r.SSHPublicKey, err = EnsureSSHKey(log, sshKeyPath)
			return err
		}),
	})
	if err != nil {
		return nil, err
	}

	return r, nil
}

// CheckCLI returns an error if the az CLI is not on PATH.
func CheckCLI() error {
	if _, err := lookPath(cliName); err != nil {
		return fmt.Errorf("azure CLI %q not found in PATH", cliName)
	}
	return nil
}

// CheckSession verifies that the az CLI session can read the target
// subscription, and returns its ID. With no subscriptionID, the session must
// see exactly one enabled subscription.
func CheckSession(ctx context.Context, log *logrus.Entry, subscriptions armsubscriptions.SubscriptionsClient, subscriptionID string) (string, error) {
	if subscriptionID != "" {
		sub, err := subscriptions.Get(ctx, subscriptionID, nil)
		if err != nil {
			return "", sessionError(err)
		}
		if sub.State != nil && *sub.State != sdkarmsubscriptions.SubscriptionStateEnabled {
			return "", fmt.Errorf("subscription %s is %s", subscriptionID, *sub.State)
		}

		log.Infof("using subscription %s (%s)", subscriptionID, displayName(&sub.Subscription))
		return subscriptionID, nil
	}

	subs, err := subscriptions.List(ctx)
	if err != nil {
		return "", sessionError(err)
	}

	var enabled []*sdkarmsubscriptions.Subscription
	for _, sub := range subs {
		if sub.SubscriptionID != nil && sub.State != nil && *sub.State == sdkarmsubscriptions.SubscriptionStateEnabled {
			enabled = append(enabled, sub)
		}
	}

	switch len(enabled) {
	case 0:
		return "", errors.New("no enabled subscription is visible to the current az login session")
	case 1:
		log.Infof("using subscription %s (%s)", *enabled[0].SubscriptionID, displayName(enabled[0]))
		return *enabled[0].SubscriptionID, nil
	}

	ids := make([]string, 0, len(enabled))
	for _, sub := range enabled {
		ids = append(ids, *sub.SubscriptionID)
	}
	return "", fmt.Errorf("%d subscriptions are enabled (%s), set AZURE_SUBSCRIPTION_ID", len(enabled), strings.Join(ids, ", "))
}

func sessionError(err error) error {
	switch {
	case azureerrors.IsUnauthenticatedError(err):
		return fmt.Errorf("az login session expired, run \"az login\": %w", err)
	case azureerrors.HasAuthorizationFailedError(err):
		return fmt.Errorf("the current az login session cannot read the subscription: %w", err)
	case azureerrors.IsNotFoundError(err):
		return fmt.Errorf("subscription not found for the current az login session: %w", err)
	}
	return fmt.Errorf("not logged in to Azure, run \"az login\": %w", err)
}

func displayName(sub *sdkarmsubscriptions.Subscription) string {
	if sub.DisplayName == nil {
		return "unnamed"
	}
	return *sub.DisplayName
}
