package topology

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	DefaultResourceGroup = "rg-three-tier"
	DefaultLocation      = "eastus"
	DefaultVMSize        = "Standard_B1s"
	DefaultAdminUsername = "azureuser"
	DefaultSSHKeyPath    = "~/.ssh/id_rsa"
	DefaultImage         = "Canonical:0001-com-ubuntu-server-jammy:22_04-lts-gen2:latest"

	webSubnetPrefix = "10.0.1.0/24"
	appSubnetPrefix = "10.0.2.0/24"
	dbSubnetPrefix  = "10.0.3.0/24"
)

func allow(name string, priority int32, protocol Protocol, source, port, description string) Rule {
	r := Rule{
		Name:                 name,
		Priority:             priority,
		Access:               AccessAllow,
		Protocol:             protocol,
		SourceAddressPrefix:  source,
		DestinationPortRange: port,
		Description:          description,
	}
	r.setDefaults()
	return r
}

func denyAll() Rule {
	r := Rule{
		Name:                 "Deny-All-Inbound",
		Priority:             MaxPriority,
		Access:               AccessDeny,
		Protocol:             ProtocolAny,
		SourceAddressPrefix:  Any,
		DestinationPortRange: Any,
		Description:          "Deny all other inbound traffic",
	}
	r.setDefaults()
	return r
}

// Default returns the compiled-in three-tier topology.
func Default() *Topology {
	image, _ := ParseImage(DefaultImage)

	return &Topology{
		ResourceGroup: DefaultResourceGroup,
		Location:      DefaultLocation,
		Tags: map[string]string{
			"project":     "three-tier",
			"environment": "demo",
			"managed-by":  "tierdeploy",
		},
		Network: Network{
			Name:          "vnet-three-tier",
			AddressPrefix: "10.0.0.0/16",
			Subnets: []Subnet{
				{Name: "web-subnet", Tier: TierWeb, AddressPrefix: webSubnetPrefix},
				{Name: "app-subnet", Tier: TierApp, AddressPrefix: appSubnetPrefix},
				{Name: "db-subnet", Tier: TierDB, AddressPrefix: dbSubnetPrefix},
			},
		},
		Policies: []SecurityPolicy{
			{
				Name: "web-nsg",
				Tier: TierWeb,
				Rules: []Rule{
					allow("Allow-HTTP", 100, ProtocolTCP, Any, "80", "Allow HTTP from the internet"),
					allow("Allow-HTTPS", 110, ProtocolTCP, Any, "443", "Allow HTTPS from the internet"),
					allow("Allow-SSH", 120, ProtocolTCP, Any, "22", "Allow SSH from the internet"),
				},
			},
			{
				Name: "app-nsg",
				Tier: TierApp,
				Rules: []Rule{
					allow("Allow-App-From-Web", 100, ProtocolTCP, webSubnetPrefix, "8080", "Allow application traffic from the web tier"),
					allow("Allow-SSH-From-Web", 110, ProtocolTCP, webSubnetPrefix, "22", "Allow SSH from the web tier"),
					allow("Allow-ICMP-From-Web", 120, ProtocolICMP, webSubnetPrefix, Any, "Allow ping from the web tier"),
					denyAll(),
				},
			},
			{
				Name: "db-nsg",
				Tier: TierDB,
				Rules: []Rule{
					allow("Allow-PostgreSQL-From-App", 100, ProtocolTCP, appSubnetPrefix, "5432", "Allow PostgreSQL from the app tier"),
					allow("Allow-MySQL-From-App", 110, ProtocolTCP, appSubnetPrefix, "3306", "Allow MySQL from the app tier"),
					allow("Allow-SSH-From-App", 120, ProtocolTCP, appSubnetPrefix, "22", "Allow SSH from the app tier"),
					allow("Allow-ICMP-From-App", 130, ProtocolICMP, appSubnetPrefix, Any, "Allow ping from the app tier"),
					denyAll(),
				},
			},
		},
		Machines: []Machine{
			{Name: "web-vm", Tier: TierWeb, Subnet: "web-subnet", Size: DefaultVMSize},
			{Name: "app-vm", Tier: TierApp, Subnet: "app-subnet", Size: DefaultVMSize},
			{Name: "db-vm", Tier: TierDB, Subnet: "db-subnet", Size: DefaultVMSize},
		},
		AdminUsername: DefaultAdminUsername,
		SSHKeyPath:    DefaultSSHKeyPath,
		Image:         image,
	}
}
