package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/sirupsen/logrus"
)

// Environment contains the cloud-specific information needed to talk to
// Azure Resource Manager.
type Environment struct {
	Name            string
	Cloud           cloud.Configuration
	PortalURL       string
	ResourceManager string

	// ResourceManagerScope is the Microsoft identity platform scope for ARM.
	// See https://learn.microsoft.com/EN-US/azure/active-directory/develop/scopes-oidc#the-default-scope
	ResourceManagerScope string
}

var (
	// PublicCloud is the public Azure cloud environment.
	PublicCloud = Environment{
		Name:                 "AzurePublicCloud",
		Cloud:                cloud.AzurePublic,
		PortalURL:            "https://portal.azure.com",
		ResourceManager:      "https://management.azure.com/",
		ResourceManagerScope: "https://management.azure.com/.default",
	}

	// USGovernmentCloud is the US Gov cloud environment.
	USGovernmentCloud = Environment{
		Name:                 "AzureUSGovernmentCloud",
		Cloud:                cloud.AzureGovernment,
		PortalURL:            "https://portal.azure.us",
		ResourceManager:      "https://management.usgovcloudapi.net/",
		ResourceManagerScope: "https://management.usgovcloudapi.net/.default",
	}

	// ChinaCloud is the Azure China (21Vianet) cloud environment.
	ChinaCloud = Environment{
		Name:                 "AzureChinaCloud",
		Cloud:                cloud.AzureChina,
		PortalURL:            "https://portal.azure.cn",
		ResourceManager:      "https://management.chinacloudapi.cn/",
		ResourceManagerScope: "https://management.chinacloudapi.cn/.default",
	}
)

// EnvironmentFromName returns the Environment corresponding to the common name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "", "AZUREPUBLICCLOUD", "AZURECLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD", "AZUREUSGOVERNMENT":
		return USGovernmentCloud, nil
	case "AZURECHINACLOUD":
		return ChinaCloud, nil
	}
	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when instantiating
// Azure SDK for Go clients. Every outbound request is logged to log.
func (e *Environment) ArmClientOptions(log *logrus.Entry, policies ...policy.Policy) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:           e.Cloud,
			PerCallPolicies: append([]policy.Policy{NewLoggingPolicy(log)}, policies...),
		},
	}
}

// NewCLICredential returns a credential backed by the az CLI's current login
// session.
func (e *Environment) NewCLICredential(tenantID string) (azcore.TokenCredential, error) {
	return azidentity.NewAzureCLICredential(&azidentity.AzureCLICredentialOptions{
		TenantID: tenantID,
	})
}
