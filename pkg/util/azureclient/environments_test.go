package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"

	utilerror "github.com/Azure/tierdeploy/test/util/error"
	testlog "github.com/Azure/tierdeploy/test/util/log"
)

func TestEnvironmentFromName(t *testing.T) {
	for _, tt := range []struct {
		name     string
		wantName string
		wantErr  string
	}{
		{name: "", wantName: "AzurePublicCloud"},
		{name: "AzurePublicCloud", wantName: "AzurePublicCloud"},
		{name: "azurecloud", wantName: "AzurePublicCloud"},
		{name: "AzureUSGovernment", wantName: "AzureUSGovernmentCloud"},
		{name: "AZURECHINACLOUD", wantName: "AzureChinaCloud"},
		{name: "AzureGermanCloud", wantErr: `cloud environment "AzureGermanCloud" is unsupported`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env, err := EnvironmentFromName(tt.name)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)
			if env.Name != tt.wantName {
				t.Errorf("got %q, want %q", env.Name, tt.wantName)
			}
		})
	}
}

func TestArmClientOptions(t *testing.T) {
	_, log := testlog.NewCapturingLogger()
	env := USGovernmentCloud

	options := env.ArmClientOptions(log, PolicyFunc(nil))

	if options.Cloud.ActiveDirectoryAuthorityHost != cloud.AzureGovernment.ActiveDirectoryAuthorityHost {
		t.Errorf("unexpected cloud %#v", options.Cloud)
	}
	if len(options.PerCallPolicies) != 2 {
		t.Errorf("got %d per-call policies, want 2", len(options.PerCallPolicies))
	}
}
