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

// ensureSecurityPolicies creates each tier's NSG and then its rules one at a
// time, in declared order.
func (d *deployer) ensureSecurityPolicies(ctx context.Context) error {
	for _, tier := range topology.Tiers {
		p := d.topology.PolicyForTier(tier)

		d.log.Infof("creating network security group %s", p.Name)
		err := d.securityGroups.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, p.Name, sdknetwork.SecurityGroup{
			Location:   to.Ptr(d.topology.Location),
			Tags:       tags(d.topology.Tags),
			Properties: &sdknetwork.SecurityGroupPropertiesFormat{},
		}, nil)
		if err != nil {
			return fmt.Errorf("creating network security group %s: %w", p.Name, err)
		}

		for _, r := range p.Rules {
			d.log.Infof("creating security rule %s/%s (priority %d)", p.Name, r.Name, r.Priority)
			err = d.securityRules.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, p.Name, r.Name, securityRule(&r), nil)
			if err != nil {
				return fmt.Errorf("creating security rule %s/%s: %w", p.Name, r.Name, err)
			}
		}
	}

	return nil
}

func securityRule(r *topology.Rule) sdknetwork.SecurityRule {
	rule := sdknetwork.SecurityRule{
		Properties: &sdknetwork.SecurityRulePropertiesFormat{
			Priority:                 to.Ptr(r.Priority),
			Direction:                to.Ptr(sdknetwork.SecurityRuleDirection(r.Direction)),
			Access:                   to.Ptr(sdknetwork.SecurityRuleAccess(r.Access)),
			Protocol:                 to.Ptr(sdknetwork.SecurityRuleProtocol(r.Protocol)),
			SourceAddressPrefix:      to.Ptr(r.SourceAddressPrefix),
			SourcePortRange:          to.Ptr(r.SourcePortRange),
			DestinationAddressPrefix: to.Ptr(r.DestinationAddressPrefix),
			DestinationPortRange:     to.Ptr(r.DestinationPortRange),
		},
	}
	if r.Description != "" {
		rule.Properties.Description = to.Ptr(r.Description)
	}
	return rule
}
