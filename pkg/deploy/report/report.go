package report

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Azure/tierdeploy/pkg/topology"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armcompute"
	"github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/Azure/tierdeploy/pkg/util/azureerrors"
)

// Machine is the reported state of one virtual machine.
type Machine struct {
	Name string
	Tier topology.Tier
	Size string

	// Available is false when the machine did not finish provisioning or its
	// addresses could not be found. Reason says why.
	Available bool
	Reason    string

	PublicIP  string
	PrivateIP string

	// Upstream is the machine of the upstream tier, if any.
	Upstream *Machine

	sshJump string
	sshHost string
}

// SSHArgs returns the ssh arguments that reach the machine, jumping through
// the upstream tiers when they are available.
func (m *Machine) SSHArgs() []string {
	if m.sshJump == "" {
		return []string{m.sshHost}
	}
	return []string{"-J", m.sshJump, m.sshHost}
}

// SSHCommand returns a ready-to-use login command.
func (m *Machine) SSHCommand() string {
	return shellquote.Join(append([]string{"ssh"}, m.SSHArgs()...)...)
}

// Report describes the deployed machines in tier order.
type Report struct {
	Topology *topology.Topology
	Machines []*Machine
}

// Machine returns the machine of tier, or nil.
func (r *Report) Machine(tier topology.Tier) *Machine {
	for _, m := range r.Machines {
		if m.Tier == tier {
			return m
		}
	}
	return nil
}

func (r *Report) Available() (machines []*Machine) {
	for _, m := range r.Machines {
		if m.Available {
			machines = append(machines, m)
		}
	}
	return machines
}

func (r *Report) Unavailable() (machines []*Machine) {
	for _, m := range r.Machines {
		if !m.Available {
			machines = append(machines, m)
		}
	}
	return machines
}

// Print writes one block per available machine and one line per unavailable
// machine, in tier order.
func (r *Report) Print(w io.Writer) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Resource group %s (%s)\n", r.Topology.ResourceGroup, r.Topology.Location)

	for _, m := range r.Machines {
		sb.WriteString("\n")
		if !m.Available {
			fmt.Fprintf(&sb, "%s: not available (%s)\n", m.Name, m.Reason)
			continue
		}

		fmt.Fprintf(&sb, "%s tier (%s)\n", m.Tier, m.Name)
		fmt.Fprintf(&sb, "  Public IP:  %s\n", m.PublicIP)
		fmt.Fprintf(&sb, "  Private IP: %s\n", m.PrivateIP)
		fmt.Fprintf(&sb, "  SSH:        %s\n", m.SSHCommand())
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

const provisioningStateSucceeded = "Succeeded"

// Reporter reads machine state and addresses from the provider.
type Reporter struct {
	log      *logrus.Entry
	topology *topology.Topology

	virtualMachines   armcompute.VirtualMachinesClient
	publicIPAddresses armnetwork.PublicIPAddressesClient
	interfaces        armnetwork.InterfacesClient
}

func NewReporter(log *logrus.Entry, topo *topology.Topology, virtualMachines armcompute.VirtualMachinesClient, publicIPAddresses armnetwork.PublicIPAddressesClient, interfaces armnetwork.InterfacesClient) *Reporter {
	return &Reporter{
		log:               log,
		topology:          topo,
		virtualMachines:   virtualMachines,
		publicIPAddresses: publicIPAddresses,
		interfaces:        interfaces,
	}
}

// Gather queries the current addresses of every machine not listed in
// failed. A nil failed means no machine was waited on in this run, so each
// machine's provisioning state is read first and only Succeeded machines are
// queried further. A machine whose VM, public IP or NIC no longer exists is
// reported as unavailable; any other provider error fails the report.
func (r *Reporter) Gather(ctx context.Context, failed map[string]error) (*Report, error) {
	rep := &Report{Topology: r.topology}

	g, ctx := errgroup.WithContext(ctx)

	for _, tier := range topology.Tiers {
		tm := r.topology.MachineForTier(tier)
		if tm == nil {
			continue
		}

		m := &Machine{
			Name: tm.Name,
			Tier: tier,
			Size: tm.Size,
		}
		rep.Machines = append(rep.Machines, m)

		if err, ok := failed[tm.Name]; ok {
			m.Reason = err.Error()
			continue
		}

		g.Go(func() error {
			if failed == nil {
				ok, err := r.provisioned(ctx, tm, m)
				if err != nil || !ok {
					return err
				}
			}
			return r.addresses(ctx, tm, m)
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	for _, m := range rep.Machines {
		if upstream, ok := m.Tier.Upstream(); ok {
			m.Upstream = rep.Machine(upstream)
		}
	}
	for _, m := range rep.Machines {
		r.setSSH(m)
	}

	return rep, nil
}

func (r *Reporter) provisioned(ctx context.Context, tm *topology.Machine, m *Machine) (bool, error) {
	vm, err := r.virtualMachines.Get(ctx, r.topology.ResourceGroup, tm.Name, nil)
	if resourceNotFound(err) {
		m.Reason = fmt.Sprintf("virtual machine %s not found", tm.Name)
		return false, nil
	}
	if err != nil {
		return false, r.readError("virtual machine", tm, err)
	}

	var state string
	if vm.Properties != nil && vm.Properties.ProvisioningState != nil {
		state = *vm.Properties.ProvisioningState
	}

	switch state {
	case provisioningStateSucceeded:
		return true, nil
	case "":
		m.Reason = "no provisioning state"
	default:
		m.Reason = "provisioning state " + state
	}
	return false, nil
}

func (r *Reporter) addresses(ctx context.Context, tm *topology.Machine, m *Machine) error {
	pip, err := r.publicIPAddresses.Get(ctx, r.topology.ResourceGroup, tm.PublicIPName(), nil)
	if resourceNotFound(err) {
		m.Reason = fmt.Sprintf("public IP address %s not found", tm.PublicIPName())
		return nil
	}
	if err != nil {
		return r.readError("public IP address", tm, err)
	}

	nic, err := r.interfaces.Get(ctx, r.topology.ResourceGroup, tm.NICName(), nil)
	if resourceNotFound(err) {
		m.Reason = fmt.Sprintf("network interface %s not found", tm.NICName())
		return nil
	}
	if err != nil {
		return r.readError("network interface", tm, err)
	}

	if pip.Properties != nil && pip.Properties.IPAddress != nil {
		m.PublicIP = *pip.Properties.IPAddress
	}
	if nic.Properties != nil && len(nic.Properties.IPConfigurations) > 0 &&
		nic.Properties.IPConfigurations[0].Properties != nil &&
		nic.Properties.IPConfigurations[0].Properties.PrivateIPAddress != nil {
		m.PrivateIP = *nic.Properties.IPConfigurations[0].Properties.PrivateIPAddress
	}

	switch {
	case m.PublicIP == "":
		m.Reason = fmt.Sprintf("public IP address %s has no address assigned", tm.PublicIPName())
	case m.PrivateIP == "":
		m.Reason = fmt.Sprintf("network interface %s has no private address", tm.NICName())
	default:
		m.Available = true
	}

	return nil
}

// resourceNotFound is true for a missing resource in an existing resource
// group.
func resourceNotFound(err error) bool {
	return azureerrors.IsNotFoundError(err) && !azureerrors.ResourceGroupNotFound(err)
}

func (r *Reporter) readError(what string, tm *topology.Machine, err error) error {
	if azureerrors.ResourceGroupNotFound(err) {
		return fmt.Errorf("resource group %s does not exist, run deploy first", r.topology.ResourceGroup)
	}
	return fmt.Errorf("reading %s of %s: %w", what, tm.Name, err)
}

// setSSH reaches each tier through the chain of upstream tiers, as the
// security rules only admit SSH from the upstream subnet. If a machine on the
// chain is unavailable the public address is used directly.
func (r *Reporter) setSSH(m *Machine) {
	if !m.Available {
		return
	}

	user := r.topology.AdminUsername
	m.sshHost = user + "@" + m.PublicIP

	var hops []string
	for up := m.Upstream; up != nil; up = up.Upstream {
		if !up.Available {
			r.log.Warnf("%s is unavailable, %s is reached on its public address", up.Name, m.Name)
			return
		}
		addr := up.PrivateIP
		if up.Upstream == nil {
			addr = up.PublicIP
		}
		hops = append([]string{user + "@" + addr}, hops...)
	}

	if len(hops) > 0 {
		m.sshJump = strings.Join(hops, ",")
		m.sshHost = user + "@" + m.PrivateIP
	}
}
