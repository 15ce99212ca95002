package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"net"

	"github.com/apparentlymart/go-cidr/cidr"
	"github.com/hashicorp/go-multierror"
)

// Validate checks the topology for internal consistency. All problems are
// reported together.
func (t *Topology) Validate() error {
	var errs *multierror.Error

	for _, f := range []func() []error{
		t.validateMetadata,
		t.validateNetwork,
		t.validatePolicies,
		t.validateMachines,
	} {
		errs = multierror.Append(errs, f()...)
	}

	return errs.ErrorOrNil()
}

func (t *Topology) validateMetadata() (errs []error) {
	if t.ResourceGroup == "" {
		errs = append(errs, fmt.Errorf("resourceGroup must be set"))
	}
	if t.Location == "" {
		errs = append(errs, fmt.Errorf("location must be set"))
	}
	if t.AdminUsername == "" {
		errs = append(errs, fmt.Errorf("adminUsername must be set"))
	}
	if t.SSHKeyPath == "" {
		errs = append(errs, fmt.Errorf("sshKeyPath must be set"))
	}
	if t.Image.Publisher == "" || t.Image.Offer == "" || t.Image.SKU == "" || t.Image.Version == "" {
		errs = append(errs, fmt.Errorf("image %q is incomplete", t.Image))
	}
	return errs
}

func (t *Topology) validateNetwork() (errs []error) {
	if t.Network.Name == "" {
		errs = append(errs, fmt.Errorf("network name must be set"))
	}

	_, vnet, err := net.ParseCIDR(t.Network.AddressPrefix)
	if err != nil {
		return append(errs, fmt.Errorf("network %q: %w", t.Network.Name, err))
	}

	names := map[string]bool{}
	tiers := map[Tier]bool{}
	var prefixes []*net.IPNet

	for _, s := range t.Network.Subnets {
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("subnet %q is declared more than once", s.Name))
		}
		names[s.Name] = true

		if !s.Tier.valid() {
			errs = append(errs, fmt.Errorf("subnet %q: unknown tier %q", s.Name, s.Tier))
		} else if tiers[s.Tier] {
			errs = append(errs, fmt.Errorf("subnet %q: tier %q already has a subnet", s.Name, s.Tier))
		}
		tiers[s.Tier] = true

		_, prefix, err := net.ParseCIDR(s.AddressPrefix)
		if err != nil {
			errs = append(errs, fmt.Errorf("subnet %q: %w", s.Name, err))
			continue
		}
		prefixes = append(prefixes, prefix)
	}

	for _, tier := range Tiers {
		if !tiers[tier] {
			errs = append(errs, fmt.Errorf("tier %q has no subnet", tier))
		}
	}

	if err := cidr.VerifyNoOverlap(prefixes, vnet); err != nil {
		errs = append(errs, fmt.Errorf("network %q: %w", t.Network.Name, err))
	}

	return errs
}

func (t *Topology) validatePolicies() (errs []error) {
	tiers := map[Tier]bool{}

	for _, p := range t.Policies {
		if !p.Tier.valid() {
			errs = append(errs, fmt.Errorf("policy %q: unknown tier %q", p.Name, p.Tier))
			continue
		}
		if tiers[p.Tier] {
			errs = append(errs, fmt.Errorf("policy %q: tier %q already has a policy", p.Name, p.Tier))
		}
		tiers[p.Tier] = true

		if t.SubnetForTier(p.Tier) == nil {
			errs = append(errs, fmt.Errorf("policy %q: tier %q has no subnet", p.Name, p.Tier))
		}

		errs = append(errs, t.validateRules(&p)...)
	}

	for _, tier := range Tiers {
		if !tiers[tier] {
			errs = append(errs, fmt.Errorf("tier %q has no policy", tier))
		}
	}

	return errs
}

func (t *Topology) validateRules(p *SecurityPolicy) (errs []error) {
	if len(p.Rules) == 0 {
		return []error{fmt.Errorf("policy %q has no rules", p.Name)}
	}

	var upstreamPrefix string
	if upstream, ok := p.Tier.Upstream(); ok {
		if s := t.SubnetForTier(upstream); s != nil {
			upstreamPrefix = s.AddressPrefix
		}
	}

	names := map[string]bool{}
	var previous int32

	for i, r := range p.Rules {
		if names[r.Name] {
			errs = append(errs, fmt.Errorf("policy %q: rule %q is declared more than once", p.Name, r.Name))
		}
		names[r.Name] = true

		if r.Priority < MinPriority || r.Priority > MaxPriority {
			errs = append(errs, fmt.Errorf("policy %q: rule %q: priority %d is outside [%d, %d]", p.Name, r.Name, r.Priority, MinPriority, MaxPriority))
		}
		if i > 0 && r.Priority <= previous {
			errs = append(errs, fmt.Errorf("policy %q: rule %q: priority %d does not follow %d", p.Name, r.Name, r.Priority, previous))
		}
		previous = r.Priority

		if r.Direction != DirectionInbound {
			errs = append(errs, fmt.Errorf("policy %q: rule %q: unsupported direction %q", p.Name, r.Name, r.Direction))
		}

		switch r.Protocol {
		case ProtocolTCP, ProtocolICMP, ProtocolAny:
		default:
			errs = append(errs, fmt.Errorf("policy %q: rule %q: unsupported protocol %q", p.Name, r.Name, r.Protocol))
		}

		switch r.Access {
		case AccessAllow:
			if upstreamPrefix != "" && r.SourceAddressPrefix != upstreamPrefix {
				errs = append(errs, fmt.Errorf("policy %q: rule %q: source %q is not the upstream subnet %q", p.Name, r.Name, r.SourceAddressPrefix, upstreamPrefix))
			}
		case AccessDeny:
			if r.IsDenyAll() && i != len(p.Rules)-1 {
				errs = append(errs, fmt.Errorf("policy %q: rule %q: deny-all rule must be last", p.Name, r.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("policy %q: rule %q: unsupported access %q", p.Name, r.Name, r.Access))
		}
	}

	return errs
}

func (t *Topology) validateMachines() (errs []error) {
	names := map[string]bool{}
	tiers := map[Tier]bool{}

	for _, m := range t.Machines {
		if names[m.Name] {
			errs = append(errs, fmt.Errorf("machine %q is declared more than once", m.Name))
		}
		names[m.Name] = true

		if m.Size == "" {
			errs = append(errs, fmt.Errorf("machine %q: size must be set", m.Name))
		}

		if !m.Tier.valid() {
			errs = append(errs, fmt.Errorf("machine %q: unknown tier %q", m.Name, m.Tier))
			continue
		}
		if tiers[m.Tier] {
			errs = append(errs, fmt.Errorf("machine %q: tier %q already has a machine", m.Name, m.Tier))
		}
		tiers[m.Tier] = true

		s := t.Subnet(m.Subnet)
		switch {
		case s == nil:
			errs = append(errs, fmt.Errorf("machine %q: subnet %q is not declared", m.Name, m.Subnet))
		case s.Tier != m.Tier:
			errs = append(errs, fmt.Errorf("machine %q: subnet %q belongs to tier %q, not %q", m.Name, m.Subnet, s.Tier, m.Tier))
		}
	}

	for _, tier := range Tiers {
		if !tiers[tier] {
			errs = append(errs, fmt.Errorf("tier %q has no machine", tier))
		}
	}

	return errs
}
