package deploy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"time"
)

// Config represents the run-time settings of a deployment
type Config struct {
	SubscriptionID string

	// SSHPublicKey is installed for the admin user of every machine. It is
	// only needed by Deploy.
	SSHPublicKey string

	VMWaitTimeout  time.Duration
	VMPollInterval time.Duration

	// OutputDir receives test-connectivity.sh and DEPLOYMENT.md.
	OutputDir string
}

func (c *Config) validate() error {
	if c.SubscriptionID == "" {
		return errors.New("subscription ID must be set")
	}
	if c.VMWaitTimeout <= 0 || c.VMPollInterval <= 0 {
		return errors.New("VM wait timeout and poll interval must be positive")
	}
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	return nil
}
