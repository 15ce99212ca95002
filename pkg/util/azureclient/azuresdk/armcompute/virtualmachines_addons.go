package armcompute

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
)

// VirtualMachinesClientAddons contains addons for VirtualMachinesClient
type VirtualMachinesClientAddons interface {
	CreateOrUpdateNoWait(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine, options *armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions) error
}

// CreateOrUpdateNoWait submits the create request and returns once ARM has
// accepted it. Completion is observed separately through Get.
func (c *virtualMachinesClient) CreateOrUpdateNoWait(ctx context.Context, resourceGroupName string, vmName string, parameters armcompute.VirtualMachine, options *armcompute.VirtualMachinesClientBeginCreateOrUpdateOptions) error {
	_, err := c.BeginCreateOrUpdate(ctx, resourceGroupName, vmName, parameters, options)
	return err
}
