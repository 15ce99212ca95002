package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/Azure/tierdeploy/pkg/topology"
	utilerror "github.com/Azure/tierdeploy/test/util/error"
)

func TestConfigFromEnvironment(t *testing.T) {
	for _, tt := range []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr string
	}{
		{
			name: "defaults",
			want: &Config{
				VMWaitTimeout:  600 * time.Second,
				VMPollInterval: 10 * time.Second,
				OutputDir:      ".",
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"AZURE_SUBSCRIPTION_ID":  "00000000-0000-0000-0000-000000000000",
				"AZURE_ENVIRONMENT":      "AzureUSGovernmentCloud",
				"TIERS_RESOURCE_GROUP":   "rg-test",
				"TIERS_VM_SIZE":          "Standard_B2s",
				"TIERS_VM_WAIT_TIMEOUT":  "2m",
				"TIERS_VM_POLL_INTERVAL": "5s",
				"TIERS_OUTPUT_DIR":       "/tmp/out",
			},
			want: &Config{
				SubscriptionID: "00000000-0000-0000-0000-000000000000",
				Environment:    "AzureUSGovernmentCloud",
				ResourceGroup:  "rg-test",
				VMSize:         "Standard_B2s",
				VMWaitTimeout:  2 * time.Minute,
				VMPollInterval: 5 * time.Second,
				OutputDir:      "/tmp/out",
			},
		},
		{
			name: "zero timeout",
			env: map[string]string{
				"TIERS_VM_WAIT_TIMEOUT": "0s",
			},
			wantErr: "TIERS_VM_WAIT_TIMEOUT must be positive, got 0s",
		},
		{
			name: "poll interval longer than timeout",
			env: map[string]string{
				"TIERS_VM_WAIT_TIMEOUT":  "30s",
				"TIERS_VM_POLL_INTERVAL": "1m",
			},
			wantErr: "TIERS_VM_POLL_INTERVAL must be positive and at most TIERS_VM_WAIT_TIMEOUT, got 1m0s",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{
				"AZURE_SUBSCRIPTION_ID", "AZURE_TENANT_ID", "AZURE_ENVIRONMENT",
				"TIERS_RESOURCE_GROUP", "TIERS_LOCATION", "TIERS_VM_SIZE",
				"TIERS_ADMIN_USERNAME", "TIERS_SSH_KEY_PATH", "TIERS_VM_WAIT_TIMEOUT",
				"TIERS_VM_POLL_INTERVAL", "TIERS_OUTPUT_DIR",
			} {
				t.Setenv(k, tt.env[k])
				if _, ok := tt.env[k]; !ok {
					os.Unsetenv(k)
				}
			}

			c, err := ConfigFromEnvironment()
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if tt.want != nil {
				for _, diff := range deep.Equal(c, tt.want) {
					t.Error(diff)
				}
			}
		})
	}
}

func TestApplyTo(t *testing.T) {
	topo := topology.Default()

	(&Config{
		ResourceGroup: "rg-override",
		Location:      "westeurope",
		VMSize:        "Standard_B2s",
		AdminUsername: "ops",
		SSHKeyPath:    "/keys/id_rsa",
	}).ApplyTo(topo)

	if topo.ResourceGroup != "rg-override" || topo.Location != "westeurope" ||
		topo.AdminUsername != "ops" || topo.SSHKeyPath != "/keys/id_rsa" {
		t.Errorf("overrides not applied: %#v", topo)
	}
	for _, m := range topo.Machines {
		if m.Size != "Standard_B2s" {
			t.Errorf("%s: got size %s", m.Name, m.Size)
		}
	}

	untouched := topology.Default()
	(&Config{}).ApplyTo(untouched)
	for _, diff := range deep.Equal(untouched, topology.Default()) {
		t.Error(diff)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	for _, tt := range []struct {
		path string
		want string
	}{
		{path: "~/.ssh/id_rsa", want: filepath.Join(home, ".ssh/id_rsa")},
		{path: "~", want: home},
		{path: "/etc/ssh/key", want: "/etc/ssh/key"},
		{path: "keys/~/id_rsa", want: "keys/~/id_rsa"},
	} {
		got, err := ExpandHome(tt.path)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.path, got, tt.want)
		}
	}
}
