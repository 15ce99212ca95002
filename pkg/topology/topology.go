package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"
)

// Tier is one layer of the deployment.
type Tier string

const (
	TierWeb Tier = "web"
	TierApp Tier = "app"
	TierDB  Tier = "db"
)

// Tiers lists the tiers in deployment and reporting order.
var Tiers = []Tier{TierWeb, TierApp, TierDB}

// Upstream returns the tier whose subnet is the only permitted source of
// traffic into t. The web tier has no upstream.
func (t Tier) Upstream() (Tier, bool) {
	switch t {
	case TierApp:
		return TierWeb, true
	case TierDB:
		return TierApp, true
	}
	return "", false
}

func (t Tier) valid() bool {
	for _, tier := range Tiers {
		if t == tier {
			return true
		}
	}
	return false
}

type Direction string

const DirectionInbound Direction = "Inbound"

type Access string

const (
	AccessAllow Access = "Allow"
	AccessDeny  Access = "Deny"
)

type Protocol string

const (
	ProtocolTCP  Protocol = "Tcp"
	ProtocolICMP Protocol = "Icmp"
	ProtocolAny  Protocol = "*"
)

// Any is the wildcard for address prefixes and port ranges.
const Any = "*"

const (
	MinPriority int32 = 100
	MaxPriority int32 = 4096
)

// Rule is a single network security rule. Rules are evaluated in ascending
// priority order and the first match wins.
type Rule struct {
	Name                     string    `json:"name"`
	Priority                 int32     `json:"priority"`
	Direction                Direction `json:"direction,omitempty"`
	Access                   Access    `json:"access"`
	Protocol                 Protocol  `json:"protocol"`
	SourceAddressPrefix      string    `json:"sourceAddressPrefix"`
	SourcePortRange          string    `json:"sourcePortRange,omitempty"`
	DestinationAddressPrefix string    `json:"destinationAddressPrefix,omitempty"`
	DestinationPortRange     string    `json:"destinationPortRange,omitempty"`
	Description              string    `json:"description,omitempty"`
}

// IsDenyAll reports whether r denies all traffic from everywhere.
func (r *Rule) IsDenyAll() bool {
	return r.Access == AccessDeny &&
		r.Protocol == ProtocolAny &&
		r.SourceAddressPrefix == Any &&
		r.DestinationPortRange == Any
}

func (r *Rule) setDefaults() {
	if r.Direction == "" {
		r.Direction = DirectionInbound
	}
	if r.SourcePortRange == "" {
		r.SourcePortRange = Any
	}
	if r.DestinationAddressPrefix == "" {
		r.DestinationAddressPrefix = Any
	}
	if r.DestinationPortRange == "" {
		r.DestinationPortRange = Any
	}
}

// SecurityPolicy is a network security group guarding one tier's subnet.
type SecurityPolicy struct {
	Name  string `json:"name"`
	Tier  Tier   `json:"tier"`
	Rules []Rule `json:"rules"`
}

type Subnet struct {
	Name          string `json:"name"`
	Tier          Tier   `json:"tier"`
	AddressPrefix string `json:"addressPrefix"`
}

type Network struct {
	Name          string   `json:"name"`
	AddressPrefix string   `json:"addressPrefix"`
	Subnets       []Subnet `json:"subnets"`
}

// Machine is a Linux virtual machine placed in one tier's subnet.
type Machine struct {
	Name   string            `json:"name"`
	Tier   Tier              `json:"tier"`
	Subnet string            `json:"subnet"`
	Size   string            `json:"size"`
	Tags   map[string]string `json:"tags,omitempty"`
}

func (m *Machine) PublicIPName() string { return m.Name + "PublicIP" }
func (m *Machine) NICName() string      { return m.Name + "VMNic" }
func (m *Machine) OSDiskName() string   { return m.Name + "OSDisk" }

// Image is a marketplace image reference.
type Image struct {
	Publisher string `json:"publisher"`
	Offer     string `json:"offer"`
	SKU       string `json:"sku"`
	Version   string `json:"version"`
}

// ParseImage parses a "publisher:offer:sku:version" URN.
func ParseImage(urn string) (Image, error) {
	parts := strings.Split(urn, ":")
	if len(parts) != 4 {
		return Image{}, fmt.Errorf("image %q is not of the form publisher:offer:sku:version", urn)
	}
	for _, p := range parts {
		if p == "" {
			return Image{}, fmt.Errorf("image %q has an empty component", urn)
		}
	}
	return Image{Publisher: parts[0], Offer: parts[1], SKU: parts[2], Version: parts[3]}, nil
}

func (i Image) String() string {
	return strings.Join([]string{i.Publisher, i.Offer, i.SKU, i.Version}, ":")
}

// Topology is the full desired state of a three-tier deployment.
type Topology struct {
	ResourceGroup string            `json:"resourceGroup"`
	Location      string            `json:"location"`
	Tags          map[string]string `json:"tags,omitempty"`

	Network  Network          `json:"network"`
	Policies []SecurityPolicy `json:"policies"`
	Machines []Machine        `json:"machines"`

	AdminUsername string `json:"adminUsername"`
	SSHKeyPath    string `json:"sshKeyPath"`
	Image         Image  `json:"image"`
}

// SetDefaults fills in the optional rule fields.
func (t *Topology) SetDefaults() {
	for i := range t.Policies {
		for j := range t.Policies[i].Rules {
			t.Policies[i].Rules[j].setDefaults()
		}
	}
}

// SubnetForTier returns the subnet of tier, or nil.
func (t *Topology) SubnetForTier(tier Tier) *Subnet {
	for i := range t.Network.Subnets {
		if t.Network.Subnets[i].Tier == tier {
			return &t.Network.Subnets[i]
		}
	}
	return nil
}

// Subnet returns the subnet called name, or nil.
func (t *Topology) Subnet(name string) *Subnet {
	for i := range t.Network.Subnets {
		if t.Network.Subnets[i].Name == name {
			return &t.Network.Subnets[i]
		}
	}
	return nil
}

// PolicyForTier returns the security policy of tier, or nil.
func (t *Topology) PolicyForTier(tier Tier) *SecurityPolicy {
	for i := range t.Policies {
		if t.Policies[i].Tier == tier {
			return &t.Policies[i]
		}
	}
	return nil
}

// MachineForTier returns the machine of tier, or nil.
func (t *Topology) MachineForTier(tier Tier) *Machine {
	for i := range t.Machines {
		if t.Machines[i].Tier == tier {
			return &t.Machines[i]
		}
	}
	return nil
}

// MachineTags returns the tags applied to m and its supporting resources.
func (t *Topology) MachineTags(m *Machine) map[string]string {
	tags := make(map[string]string, len(t.Tags)+len(m.Tags)+1)
	for k, v := range t.Tags {
		tags[k] = v
	}
	for k, v := range m.Tags {
		tags[k] = v
	}
	tags["tier"] = string(m.Tier)
	return tags
}
