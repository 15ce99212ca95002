package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Azure/tierdeploy/pkg/topology"
)

// Config holds the settings read from the process environment. Empty
// topology overrides leave the topology untouched.
type Config struct {
	SubscriptionID string `envconfig:"AZURE_SUBSCRIPTION_ID"`
	TenantID       string `envconfig:"AZURE_TENANT_ID"`
	Environment    string `envconfig:"AZURE_ENVIRONMENT"`

	ResourceGroup string `envconfig:"TIERS_RESOURCE_GROUP"`
	Location      string `envconfig:"TIERS_LOCATION"`
	VMSize        string `envconfig:"TIERS_VM_SIZE"`
	AdminUsername string `envconfig:"TIERS_ADMIN_USERNAME"`
	SSHKeyPath    string `envconfig:"TIERS_SSH_KEY_PATH"`

	VMWaitTimeout  time.Duration `envconfig:"TIERS_VM_WAIT_TIMEOUT" default:"600s"`
	VMPollInterval time.Duration `envconfig:"TIERS_VM_POLL_INTERVAL" default:"10s"`

	OutputDir string `envconfig:"TIERS_OUTPUT_DIR" default:"."`
}

// ConfigFromEnvironment reads Config from the process environment.
func ConfigFromEnvironment() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}

	if c.VMWaitTimeout <= 0 {
		return nil, fmt.Errorf("TIERS_VM_WAIT_TIMEOUT must be positive, got %s", c.VMWaitTimeout)
	}
	if c.VMPollInterval <= 0 || c.VMPollInterval > c.VMWaitTimeout {
		return nil, fmt.Errorf("TIERS_VM_POLL_INTERVAL must be positive and at most TIERS_VM_WAIT_TIMEOUT, got %s", c.VMPollInterval)
	}

	return &c, nil
}

// ApplyTo overrides t with every non-empty setting in c.
func (c *Config) ApplyTo(t *topology.Topology) {
	if c.ResourceGroup != "" {
		t.ResourceGroup = c.ResourceGroup
	}
	if c.Location != "" {
		t.Location = c.Location
	}
	if c.AdminUsername != "" {
		t.AdminUsername = c.AdminUsername
	}
	if c.SSHKeyPath != "" {
		t.SSHKeyPath = c.SSHKeyPath
	}
	if c.VMSize != "" {
		for i := range t.Machines {
			t.Machines[i].Size = c.VMSize
		}
	}
}

// ExpandHome replaces a leading "~/" in path with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
