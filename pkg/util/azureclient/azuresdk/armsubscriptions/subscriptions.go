package armsubscriptions

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// SubscriptionsClient is a minimal interface for azure subscriptions Client
type SubscriptionsClient interface {
	Get(ctx context.Context, subscriptionID string, options *armsubscriptions.ClientGetOptions) (armsubscriptions.ClientGetResponse, error)
	SubscriptionsClientAddons
}

type subscriptionsClient struct {
	*armsubscriptions.Client
}

var _ SubscriptionsClient = &subscriptionsClient{}

// NewSubscriptionsClient creates a new SubscriptionsClient
func NewSubscriptionsClient(credential azcore.TokenCredential, options *arm.ClientOptions) (SubscriptionsClient, error) {
	client, err := armsubscriptions.NewClient(credential, options)
	if err != nil {
		return nil, err
	}
	return &subscriptionsClient{client}, nil
}
