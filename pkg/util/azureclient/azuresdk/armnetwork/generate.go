package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE
//go:generate mockgen -destination=../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/tierdeploy/pkg/util/azureclient/azuresdk/$GOPACKAGE InterfacesClient,PublicIPAddressesClient,SecurityGroupsClient,SecurityRulesClient,SubnetsClient,VirtualNetworksClient
//go:generate goimports -local=github.com/Azure/tierdeploy -e -w ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go
