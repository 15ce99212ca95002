package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/tierdeploy/pkg/topology"
)

func (d *deployer) ensureNetwork(ctx context.Context) error {
	vnet := d.topology.Network

	d.log.Infof("creating virtual network %s (%s)", vnet.Name, vnet.AddressPrefix)
	err := d.virtualNetworks.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, vnet.Name, sdknetwork.VirtualNetwork{
		Location: to.Ptr(d.topology.Location),
		Tags:     tags(d.topology.Tags),
		Properties: &sdknetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &sdknetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(vnet.AddressPrefix)},
			},
		},
	}, nil)
	if err != nil {
		return fmt.Errorf("creating virtual network %s: %w", vnet.Name, err)
	}

	for _, tier := range topology.Tiers {
		s := d.topology.SubnetForTier(tier)

		d.log.Infof("creating subnet %s (%s)", s.Name, s.AddressPrefix)
		err = d.subnets.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, vnet.Name, s.Name, sdknetwork.Subnet{
			Properties: &sdknetwork.SubnetPropertiesFormat{
				AddressPrefix: to.Ptr(s.AddressPrefix),
			},
		}, nil)
		if err != nil {
			return fmt.Errorf("creating subnet %s: %w", s.Name, err)
		}
	}

	return nil
}
