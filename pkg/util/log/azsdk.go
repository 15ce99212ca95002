package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

// ForwardAzureSDKLogs routes Azure SDK diagnostic events to log at debug
// level. The SDK listener is process-global, so only the last call wins.
func ForwardAzureSDKLogs(log *logrus.Entry) {
	if !log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		azlog.SetListener(nil)
		return
	}

	azlog.SetEvents(azlog.EventRequest, azlog.EventResponse, azlog.EventRetryPolicy, azlog.EventLRO)
	azlog.SetListener(func(event azlog.Event, msg string) {
		log.WithField("azsdk_event", string(event)).Debug(msg)
	})
}
