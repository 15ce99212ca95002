package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkresources "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ensureResourceGroup creates the resource group unless it already exists.
// An existing group is reused as is, whatever its location and tags.
func (d *deployer) ensureResourceGroup(ctx context.Context) error {
	resp, err := d.resourceGroups.CheckExistence(ctx, d.topology.ResourceGroup, nil)
	if err != nil {
		return err
	}

	if resp.Success {
		d.log.Warnf("resource group %s already exists, reusing it", d.topology.ResourceGroup)
		return nil
	}

	d.log.Infof("creating resource group %s in %s", d.topology.ResourceGroup, d.topology.Location)
	_, err = d.resourceGroups.CreateOrUpdate(ctx, d.topology.ResourceGroup, sdkresources.ResourceGroup{
		Location: to.Ptr(d.topology.Location),
		Tags:     tags(d.topology.Tags),
	}, nil)
	return err
}
