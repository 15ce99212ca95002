//go:build e2e

package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Azure/tierdeploy/pkg/deploy/report"
	"github.com/Azure/tierdeploy/pkg/topology"
)

var _ = Describe("Security policies", func() {
	for _, tier := range topology.Tiers {
		Specify("the "+string(tier)+" subnet should be guarded by its policy", func() {
			ctx := context.Background()
			p := topo.PolicyForTier(tier)
			s := topo.SubnetForTier(tier)

			nsg, err := clients.SecurityGroups.Get(ctx, topo.ResourceGroup, p.Name, nil)
			Expect(err).NotTo(HaveOccurred())

			subnet, err := clients.Subnets.Get(ctx, topo.ResourceGroup, topo.Network.Name, s.Name, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(subnet.Properties.NetworkSecurityGroup).NotTo(BeNil())
			Expect(*subnet.Properties.NetworkSecurityGroup.ID).To(BeEquivalentTo(*nsg.ID))

			By("checking every declared rule is present")
			rules := map[string]int32{}
			for _, r := range nsg.Properties.SecurityRules {
				rules[*r.Name] = *r.Properties.Priority
			}
			for _, r := range p.Rules {
				Expect(rules).To(HaveKeyWithValue(r.Name, r.Priority))
			}
		})
	}
})

var _ = Describe("Machines", func() {
	Specify("every machine should be provisioned", func() {
		ctx := context.Background()

		for _, m := range topo.Machines {
			vm, err := clients.VirtualMachines.Get(ctx, topo.ResourceGroup, m.Name, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(*vm.Properties.ProvisioningState).To(Equal("Succeeded"))
		}
	})

	Specify("the report should list every tier reachable through its upstream", func() {
		ctx := context.Background()

		rep, err := report.NewReporter(log, topo, clients.VirtualMachines, clients.PublicIPAddresses, clients.Interfaces).Gather(ctx, nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(rep.Unavailable()).To(BeEmpty())

		db := rep.Machine(topology.TierDB)
		Expect(db.SSHCommand()).To(ContainSubstring("-J " + topo.AdminUsername + "@" + rep.Machine(topology.TierWeb).PublicIP))
	})
})
