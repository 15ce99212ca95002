package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net"
	"reflect"
	"testing"

	"github.com/go-test/deep"
)

func TestDefaultPrioritiesStrictlyIncreasing(t *testing.T) {
	for _, p := range Default().Policies {
		for i := 1; i < len(p.Rules); i++ {
			if p.Rules[i].Priority <= p.Rules[i-1].Priority {
				t.Errorf("%s: rule %s (%d) does not follow %s (%d)", p.Name, p.Rules[i].Name, p.Rules[i].Priority, p.Rules[i-1].Name, p.Rules[i-1].Priority)
			}
		}
	}
}

func TestDefaultDenyAllIsLast(t *testing.T) {
	topo := Default()

	for _, tier := range []Tier{TierApp, TierDB} {
		p := topo.PolicyForTier(tier)
		last := p.Rules[len(p.Rules)-1]
		if !last.IsDenyAll() || last.Priority != MaxPriority {
			t.Errorf("%s: last rule is %#v", p.Name, last)
		}
		for _, r := range p.Rules[:len(p.Rules)-1] {
			if r.Access != AccessAllow {
				t.Errorf("%s: unexpected %s rule %s before deny-all", p.Name, r.Access, r.Name)
			}
		}
	}

	for _, r := range topo.PolicyForTier(TierWeb).Rules {
		if r.IsDenyAll() {
			t.Errorf("web-nsg: unexpected deny-all rule %s", r.Name)
		}
	}
}

func TestDefaultAllowsOnlyUpstream(t *testing.T) {
	topo := Default()

	for _, tt := range []struct {
		tier       Tier
		wantSource string
		wantPorts  []string
	}{
		{tier: TierWeb, wantSource: Any, wantPorts: []string{"80", "443", "22"}},
		{tier: TierApp, wantSource: "10.0.1.0/24", wantPorts: []string{"8080", "22", Any}},
		{tier: TierDB, wantSource: "10.0.2.0/24", wantPorts: []string{"5432", "3306", "22", Any}},
	} {
		t.Run(string(tt.tier), func(t *testing.T) {
			var ports []string
			for _, r := range topo.PolicyForTier(tt.tier).Rules {
				if r.Access != AccessAllow {
					continue
				}
				if r.SourceAddressPrefix != tt.wantSource {
					t.Errorf("rule %s admits %s", r.Name, r.SourceAddressPrefix)
				}
				ports = append(ports, r.DestinationPortRange)
			}
			if !reflect.DeepEqual(ports, tt.wantPorts) {
				t.Errorf("got ports %v, want %v", ports, tt.wantPorts)
			}
		})
	}
}

func TestDefaultSubnetsDisjointWithinNetwork(t *testing.T) {
	topo := Default()

	_, vnet, err := net.ParseCIDR(topo.Network.AddressPrefix)
	if err != nil {
		t.Fatal(err)
	}
	if vnet.String() != "10.0.0.0/16" {
		t.Errorf("got network %s", vnet)
	}

	var prefixes []*net.IPNet
	for _, s := range topo.Network.Subnets {
		_, prefix, err := net.ParseCIDR(s.AddressPrefix)
		if err != nil {
			t.Fatal(err)
		}
		if !vnet.Contains(prefix.IP) {
			t.Errorf("%s is outside %s", prefix, vnet)
		}
		for _, other := range prefixes {
			if other.Contains(prefix.IP) || prefix.Contains(other.IP) {
				t.Errorf("%s overlaps %s", prefix, other)
			}
		}
		prefixes = append(prefixes, prefix)
	}
}

func TestUpstream(t *testing.T) {
	for _, tt := range []struct {
		tier   Tier
		want   Tier
		wantOk bool
	}{
		{tier: TierWeb},
		{tier: TierApp, want: TierWeb, wantOk: true},
		{tier: TierDB, want: TierApp, wantOk: true},
	} {
		got, ok := tt.tier.Upstream()
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("%s: got %q, %v", tt.tier, got, ok)
		}
	}
}

func TestDerivedNames(t *testing.T) {
	m := Default().MachineForTier(TierApp)

	for _, diff := range deep.Equal(
		[]string{m.PublicIPName(), m.NICName(), m.OSDiskName()},
		[]string{"app-vmPublicIP", "app-vmVMNic", "app-vmOSDisk"},
	) {
		t.Error(diff)
	}
}

func TestMachineTags(t *testing.T) {
	topo := Default()
	m := topo.MachineForTier(TierDB)
	m.Tags = map[string]string{"owner": "dba", "environment": "staging"}

	for _, diff := range deep.Equal(topo.MachineTags(m), map[string]string{
		"project":     "three-tier",
		"environment": "staging",
		"managed-by":  "tierdeploy",
		"owner":       "dba",
		"tier":        "db",
	}) {
		t.Error(diff)
	}

	if topo.Tags["environment"] != "demo" {
		t.Error("topology tags were modified")
	}
}

func TestParseImage(t *testing.T) {
	for _, tt := range []struct {
		urn     string
		want    Image
		wantErr string
	}{
		{
			urn:  DefaultImage,
			want: Image{Publisher: "Canonical", Offer: "0001-com-ubuntu-server-jammy", SKU: "22_04-lts-gen2", Version: "latest"},
		},
		{
			urn:     "Ubuntu2204",
			wantErr: `image "Ubuntu2204" is not of the form publisher:offer:sku:version`,
		},
		{
			urn:     "Canonical::22_04-lts-gen2:latest",
			wantErr: `image "Canonical::22_04-lts-gen2:latest" has an empty component`,
		},
	} {
		t.Run(tt.urn, func(t *testing.T) {
			got, err := ParseImage(tt.urn)
			if err != nil && err.Error() != tt.wantErr ||
				err == nil && tt.wantErr != "" {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %#v", got)
			}
			if err == nil && got.String() != tt.urn {
				t.Errorf("got %s", got)
			}
		})
	}
}
