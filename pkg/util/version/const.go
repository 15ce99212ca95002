package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// GitCommit is set at build time:
// -ldflags "-X github.com/Azure/tierdeploy/pkg/util/version.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = "unknown"
