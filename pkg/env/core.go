package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/sirupsen/logrus"

	"github.com/Azure/tierdeploy/pkg/util/azureclient"
	utillog "github.com/Azure/tierdeploy/pkg/util/log"
)

// Core carries what every Azure client in the process needs: the target
// cloud, a credential and client options with request logging.
type Core interface {
	Environment() *azureclient.Environment
	Credential() azcore.TokenCredential
	ClientOptions() *arm.ClientOptions
	TenantID() string
	Logger() *logrus.Entry
}

type core struct {
	environment   azureclient.Environment
	credential    azcore.TokenCredential
	clientOptions *arm.ClientOptions
	tenantID      string
	log           *logrus.Entry
}

func (c *core) Environment() *azureclient.Environment { return &c.environment }
func (c *core) Credential() azcore.TokenCredential    { return c.credential }
func (c *core) ClientOptions() *arm.ClientOptions     { return c.clientOptions }
func (c *core) TenantID() string                      { return c.tenantID }
func (c *core) Logger() *logrus.Entry                 { return c.log }

// NewCore resolves the cloud environment and builds a credential backed by
// the az CLI login session. No token is requested yet.
func NewCore(log *logrus.Entry, cfg *Config) (Core, error) {
	environment, err := azureclient.EnvironmentFromName(cfg.Environment)
	if err != nil {
		return nil, err
	}

	log.Infof("using cloud environment %s", environment.Name)

	credential, err := environment.NewCLICredential(cfg.TenantID)
	if err != nil {
		return nil, err
	}

	utillog.ForwardAzureSDKLogs(utillog.WithComponent(log, "azsdk"))

	return &core{
		environment:   environment,
		credential:    credential,
		clientOptions: environment.ArmClientOptions(utillog.WithComponent(log, "arm")),
		tenantID:      cfg.TenantID,
		log:           log,
	}, nil
}
