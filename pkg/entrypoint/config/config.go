package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Azure/tierdeploy/pkg/env"
	"github.com/Azure/tierdeploy/pkg/topology"
)

const (
	flagLogLevel = "loglevel"
	flagTopology = "topology"
)

// Common holds the settings shared by every command.
type Common struct {
	LogLevel     string
	TopologyPath string
}

// AddFlags registers the common flags, normally as persistent flags of the
// root command.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(flagLogLevel, "info", "log level: trace, debug, info, warning or error")
	flags.String(flagTopology, "", "YAML topology file replacing the built-in topology")
}

// CommonConfigFromCmd reads the common flags of cmd. A flag left unset falls
// back to TIERS_LOGLEVEL or TIERS_TOPOLOGY in the environment.
func CommonConfigFromCmd(cmd *cobra.Command) (Common, error) {
	v := viper.New()
	v.SetEnvPrefix("TIERS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return Common{}, err
	}

	return Common{
		LogLevel:     v.GetString(flagLogLevel),
		TopologyPath: v.GetString(flagTopology),
	}, nil
}

// LoadTopology returns the topology in path, or the built-in one if path is
// empty, with the environment overrides in cfg applied. The result is
// validated.
func LoadTopology(path string, cfg *env.Config) (*topology.Topology, error) {
	t := topology.Default()

	if path != "" {
		var err error
		t, err = topology.Load(path)
		if err != nil {
			return nil, err
		}
	}

	cfg.ApplyTo(t)

	err := t.Validate()
	if err != nil {
		return nil, err
	}

	return t, nil
}
