package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
)

// SecurityRulesClient is a minimal interface for azure SecurityRulesClient
type SecurityRulesClient interface {
	SecurityRulesClientAddons
}

type securityRulesClient struct {
	*armnetwork.SecurityRulesClient
}

var _ SecurityRulesClient = &securityRulesClient{}

// NewSecurityRulesClient creates a new SecurityRulesClient
func NewSecurityRulesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (SecurityRulesClient, error) {
	clientFactory, err := armnetwork.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &securityRulesClient{SecurityRulesClient: clientFactory.NewSecurityRulesClient()}, nil
}
