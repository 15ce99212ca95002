package armsubscriptions

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
)

// SubscriptionsClientAddons contains addons for SubscriptionsClient
type SubscriptionsClientAddons interface {
	List(ctx context.Context) ([]*armsubscriptions.Subscription, error)
}

func (c *subscriptionsClient) List(ctx context.Context) (result []*armsubscriptions.Subscription, err error) {
	pager := c.NewListPager(nil)

	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, page.Value...)
	}

	return result, nil
}
