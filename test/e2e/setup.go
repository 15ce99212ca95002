//go:build e2e

package e2e

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sirupsen/logrus"

	"github.com/Azure/tierdeploy/pkg/entrypoint/config"
	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/topology"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armcompute"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armnetwork"
	utillog "github.com/Azure/tierdeploy/pkg/util/log"
)

type clientSet struct {
	SecurityGroups    armnetwork.SecurityGroupsClient
	Subnets           armnetwork.SubnetsClient
	PublicIPAddresses armnetwork.PublicIPAddressesClient
	Interfaces        armnetwork.InterfacesClient
	VirtualMachines   armcompute.VirtualMachinesClient
}

var (
	log     *logrus.Entry
	_env    env.Core
	topo    *topology.Topology
	clients *clientSet
)

func newClientSet(subscriptionID string) (*clientSet, error) {
	credential, options := _env.Credential(), _env.ClientOptions()

	securityGroups, err := armnetwork.NewSecurityGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	subnets, err := armnetwork.NewSubnetsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	publicIPAddresses, err := armnetwork.NewPublicIPAddressesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	interfaces, err := armnetwork.NewInterfacesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	virtualMachines, err := armcompute.NewVirtualMachinesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &clientSet{
		SecurityGroups:    securityGroups,
		Subnets:           subnets,
		PublicIPAddresses: publicIPAddresses,
		Interfaces:        interfaces,
		VirtualMachines:   virtualMachines,
	}, nil
}

// setup targets a deployment made beforehand with "tierdeploy deploy" using
// the same environment.
func setup(ctx context.Context) error {
	for _, key := range []string{
		"AZURE_SUBSCRIPTION_ID",
	} {
		if _, found := os.LookupEnv(key); !found {
			return fmt.Errorf("environment variable %q unset", key)
		}
	}

	cfg, err := env.ConfigFromEnvironment()
	if err != nil {
		return err
	}

	topo, err = config.LoadTopology(os.Getenv("TIERS_TOPOLOGY"), cfg)
	if err != nil {
		return err
	}

	_env, err = env.NewCore(log, cfg)
	if err != nil {
		return err
	}

	clients, err = newClientSet(cfg.SubscriptionID)
	return err
}

var _ = BeforeSuite(func() {
	log = utillog.GetLogger("info")
	log.Info("BeforeSuite")

	SetDefaultEventuallyTimeout(5 * time.Minute)
	SetDefaultEventuallyPollingInterval(10 * time.Second)

	if err := setup(context.Background()); err != nil {
		panic(err)
	}
})
