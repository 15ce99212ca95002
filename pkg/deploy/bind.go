package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/tierdeploy/pkg/topology"
)

// bindSecurityPolicies attaches each tier's NSG to its subnet. The subnet is
// read back first so that the write keeps its current properties.
func (d *deployer) bindSecurityPolicies(ctx context.Context) error {
	for _, tier := range topology.Tiers {
		p := d.topology.PolicyForTier(tier)
		s := d.topology.SubnetForTier(tier)

		nsg, err := d.securityGroups.Get(ctx, d.topology.ResourceGroup, p.Name, nil)
		if err != nil {
			return err
		}

		subnet, err := d.subnets.Get(ctx, d.topology.ResourceGroup, d.topology.Network.Name, s.Name, nil)
		if err != nil {
			return err
		}

		if subnet.Properties == nil {
			subnet.Properties = &sdknetwork.SubnetPropertiesFormat{}
		}
		subnet.Properties.NetworkSecurityGroup = &sdknetwork.SecurityGroup{
			ID: nsg.ID,
		}

		d.log.Infof("associating network security group %s with subnet %s", p.Name, s.Name)
		err = d.subnets.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, d.topology.Network.Name, s.Name, subnet.Subnet, nil)
		if err != nil {
			return err
		}
	}

	return nil
}
