package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkcompute "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/compute/armcompute/v6"
	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/hashicorp/go-multierror"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/Azure/tierdeploy/pkg/topology"
	"github.com/Azure/tierdeploy/pkg/util/azureerrors"
)

const (
	provisioningStateSucceeded = "Succeeded"
	provisioningStateFailed    = "Failed"
)

// createMachines creates the public IP and NIC of every machine and then
// submits the VM create without waiting for it.
func (d *deployer) createMachines(ctx context.Context) error {
	for _, tier := range topology.Tiers {
		m := d.topology.MachineForTier(tier)
		machineTags := tags(d.topology.MachineTags(m))

		d.log.Infof("creating public IP address %s", m.PublicIPName())
		err := d.publicIPAddresses.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, m.PublicIPName(), sdknetwork.PublicIPAddress{
			Location: to.Ptr(d.topology.Location),
			Tags:     machineTags,
			SKU: &sdknetwork.PublicIPAddressSKU{
				Name: to.Ptr(sdknetwork.PublicIPAddressSKUNameStandard),
			},
			Properties: &sdknetwork.PublicIPAddressPropertiesFormat{
				PublicIPAllocationMethod: to.Ptr(sdknetwork.IPAllocationMethodStatic),
				PublicIPAddressVersion:   to.Ptr(sdknetwork.IPVersionIPv4),
			},
		}, nil)
		if err != nil {
			return fmt.Errorf("creating public IP address %s: %w", m.PublicIPName(), err)
		}

		d.log.Infof("creating network interface %s in subnet %s", m.NICName(), m.Subnet)
		err = d.interfaces.CreateOrUpdateAndWait(ctx, d.topology.ResourceGroup, m.NICName(), sdknetwork.Interface{
			Location: to.Ptr(d.topology.Location),
			Tags:     machineTags,
			Properties: &sdknetwork.InterfacePropertiesFormat{
				IPConfigurations: []*sdknetwork.InterfaceIPConfiguration{
					{
						Name: to.Ptr("ipconfig1"),
						Properties: &sdknetwork.InterfaceIPConfigurationPropertiesFormat{
							Primary:                   to.Ptr(true),
							PrivateIPAllocationMethod: to.Ptr(sdknetwork.IPAllocationMethodDynamic),
							Subnet: &sdknetwork.Subnet{
								ID: to.Ptr(d.subnetID(m.Subnet)),
							},
							PublicIPAddress: &sdknetwork.PublicIPAddress{
								ID: to.Ptr(d.networkResourceID("publicIPAddresses", m.PublicIPName())),
							},
						},
					},
				},
			},
		}, nil)
		if err != nil {
			return fmt.Errorf("creating network interface %s: %w", m.NICName(), err)
		}

		d.log.Infof("submitting virtual machine %s (%s)", m.Name, m.Size)
		err = d.virtualMachines.CreateOrUpdateNoWait(ctx, d.topology.ResourceGroup, m.Name, d.virtualMachine(m, machineTags), nil)
		if azureerrors.IsVMCapacityError(err) {
			return fmt.Errorf("VM size %s is not available for %s in %s: %w", m.Size, m.Name, d.topology.Location, err)
		}
		if err != nil {
			return fmt.Errorf("creating virtual machine %s: %w", m.Name, err)
		}
	}

	return nil
}

func (d *deployer) virtualMachine(m *topology.Machine, machineTags map[string]*string) sdkcompute.VirtualMachine {
	user := d.topology.AdminUsername
	image := d.topology.Image

	return sdkcompute.VirtualMachine{
		Location: to.Ptr(d.topology.Location),
		Tags:     machineTags,
		Properties: &sdkcompute.VirtualMachineProperties{
			HardwareProfile: &sdkcompute.HardwareProfile{
				VMSize: to.Ptr(sdkcompute.VirtualMachineSizeTypes(m.Size)),
			},
			StorageProfile: &sdkcompute.StorageProfile{
				ImageReference: &sdkcompute.ImageReference{
					Publisher: to.Ptr(image.Publisher),
					Offer:     to.Ptr(image.Offer),
					SKU:       to.Ptr(image.SKU),
					Version:   to.Ptr(image.Version),
				},
				OSDisk: &sdkcompute.OSDisk{
					Name:         to.Ptr(m.OSDiskName()),
					CreateOption: to.Ptr(sdkcompute.DiskCreateOptionTypesFromImage),
					DeleteOption: to.Ptr(sdkcompute.DiskDeleteOptionTypesDelete),
					ManagedDisk: &sdkcompute.ManagedDiskParameters{
						StorageAccountType: to.Ptr(sdkcompute.StorageAccountTypesStandardLRS),
					},
				},
			},
			OSProfile: &sdkcompute.OSProfile{
				ComputerName:  to.Ptr(m.Name),
				AdminUsername: to.Ptr(user),
				LinuxConfiguration: &sdkcompute.LinuxConfiguration{
					DisablePasswordAuthentication: to.Ptr(true),
					SSH: &sdkcompute.SSHConfiguration{
						PublicKeys: []*sdkcompute.SSHPublicKey{
							{
								Path:    to.Ptr("/home/" + user + "/.ssh/authorized_keys"),
								KeyData: to.Ptr(d.config.SSHPublicKey),
							},
						},
					},
				},
			},
			NetworkProfile: &sdkcompute.NetworkProfile{
				NetworkInterfaces: []*sdkcompute.NetworkInterfaceReference{
					{
						ID: to.Ptr(d.networkResourceID("networkInterfaces", m.NICName())),
						Properties: &sdkcompute.NetworkInterfaceReferenceProperties{
							Primary: to.Ptr(true),
						},
					},
				},
			},
		},
	}
}

// waitForMachines waits for each machine in turn. A failed or timed out wait
// is logged and recorded, and the remaining machines are still waited on.
func (d *deployer) waitForMachines(ctx context.Context) error {
	var errs *multierror.Error

	d.failed = map[string]error{}

	for _, tier := range topology.Tiers {
		m := d.topology.MachineForTier(tier)

		err := d.waitForMachine(ctx, m.Name)
		if err != nil {
			d.log.Errorf("✗ %s failed: %v", m.Name, err)
			d.failed[m.Name] = err
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", m.Name, err))
			continue
		}

		d.log.Infof("✓ %s created", m.Name)
	}

	return errs.ErrorOrNil()
}

func (d *deployer) waitForMachine(ctx context.Context, name string) error {
	var state string

	err := wait.PollUntilContextTimeout(ctx, d.config.VMPollInterval, d.config.VMWaitTimeout, true, func(ctx context.Context) (bool, error) {
		vm, err := d.virtualMachines.Get(ctx, d.topology.ResourceGroup, name, nil)
		if azureerrors.IsNotFoundError(err) || azureerrors.IsRetryableError(err) {
			d.log.Debugf("waiting for %s: %v", name, err)
			return false, nil
		}
		if err != nil {
			return false, err
		}

		state = ""
		if vm.Properties != nil && vm.Properties.ProvisioningState != nil {
			state = *vm.Properties.ProvisioningState
		}

		switch state {
		case provisioningStateSucceeded:
			return true, nil
		case provisioningStateFailed:
			return false, fmt.Errorf("provisioning state %s", state)
		}

		d.log.Debugf("%s provisioning state is %q", name, state)
		return false, nil
	})
	if err != nil && wait.Interrupted(err) && ctx.Err() == nil {
		return fmt.Errorf("timed out after %s waiting for provisioning state %s (last state %q)", d.config.VMWaitTimeout, provisioningStateSucceeded, state)
	}
	return err
}
