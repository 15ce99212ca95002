package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/sirupsen/logrus"

	"github.com/Azure/tierdeploy/pkg/deploy/report"
	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/topology"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armcompute"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armresources"
	"github.com/Azure/tierdeploy/pkg/util/steps"
)

var _ Deployer = (*deployer)(nil)

type Deployer interface {
	Deploy(context.Context) error
	Report(context.Context) error
}

type deployer struct {
	log      *logrus.Entry
	topology *topology.Topology
	config   *Config
	out      io.Writer

	resourceGroups    armresources.ResourceGroupsClient
	securityGroups    armnetwork.SecurityGroupsClient
	securityRules     armnetwork.SecurityRulesClient
	virtualNetworks   armnetwork.VirtualNetworksClient
	subnets           armnetwork.SubnetsClient
	publicIPAddresses armnetwork.PublicIPAddressesClient
	interfaces        armnetwork.InterfacesClient
	virtualMachines   armcompute.VirtualMachinesClient

	// failed holds the machines whose wait did not end in Succeeded. It is
	// nil until the machines have been waited on.
	failed map[string]error
}

// New initiates a deployer for topo. The report is printed to out.
func New(log *logrus.Entry, core env.Core, topo *topology.Topology, config *Config, out io.Writer) (Deployer, error) {
	err := config.validate()
	if err != nil {
		return nil, err
	}

	err = topo.Validate()
	if err != nil {
		return nil, err
	}

	d := &deployer{
		log:      log,
		topology: topo,
		config:   config,
		out:      out,
	}

	credential, options := core.Credential(), core.ClientOptions()

	if d.resourceGroups, err = armresources.NewResourceGroupsClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.securityGroups, err = armnetwork.NewSecurityGroupsClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.securityRules, err = armnetwork.NewSecurityRulesClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.virtualNetworks, err = armnetwork.NewVirtualNetworksClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.subnets, err = armnetwork.NewSubnetsClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.publicIPAddresses, err = armnetwork.NewPublicIPAddressesClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.interfaces, err = armnetwork.NewInterfacesClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}
	if d.virtualMachines, err = armcompute.NewVirtualMachinesClient(config.SubscriptionID, credential, options); err != nil {
		return nil, err
	}

	return d, nil
}

// Deploy provisions the topology step by step and reports the result. The
// machine waits are guarded so that healthy machines are still reported when
// one of them fails; Deploy then returns the wait error.
func (d *deployer) Deploy(ctx context.Context) error {
	if d.config.SSHPublicKey == "" {
		return errors.New("SSH public key must be set")
	}

	_, err := steps.Run(ctx, d.log, []steps.Step{
		steps.Action(d.ensureResourceGroup),
		steps.Action(d.ensureSecurityPolicies),
		steps.Action(d.ensureNetwork),
		steps.Action(d.bindSecurityPolicies),
		steps.Action(d.createMachines),
		steps.Guarded(steps.Action(d.waitForMachines)),
		steps.Action(d.Report),
	})
	return err
}

// Report prints the addresses of the deployed machines and writes the
// connectivity script and deployment document.
func (d *deployer) Report(ctx context.Context) error {
	rep, err := report.NewReporter(d.log, d.topology, d.virtualMachines, d.publicIPAddresses, d.interfaces).Gather(ctx, d.failed)
	if err != nil {
		return err
	}

	err = rep.Print(d.out)
	if err != nil {
		return err
	}

	paths, err := rep.WriteArtifacts(d.config.OutputDir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		d.log.Infof("wrote %s", path)
	}

	return nil
}

func tags(m map[string]string) map[string]*string {
	if len(m) == 0 {
		return nil
	}

	t := make(map[string]*string, len(m))
	for k, v := range m {
		t[k] = to.Ptr(v)
	}
	return t
}

func (d *deployer) networkResourceID(resourceType, name string) string {
	return fmt.Sprintf("/subscriptions/%s/resourceGroups/%s/providers/Microsoft.Network/%s/%s", d.config.SubscriptionID, d.topology.ResourceGroup, resourceType, name)
}

func (d *deployer) subnetID(subnet string) string {
	return d.networkResourceID("virtualNetworks", d.topology.Network.Name) + "/subnets/" + subnet
}
