package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/tierdeploy/test/util/log"
)

func TestLoggingRoundTripper(t *testing.T) {
	for _, tt := range []struct {
		name       string
		res        *http.Response
		err        error
		wantStatus interface{}
		wantErr    bool
	}{
		{
			name: "success",
			res: &http.Response{
				StatusCode:    http.StatusCreated,
				ContentLength: 12,
				Header:        http.Header{correlationIdHeader: []string{"abc"}},
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "transport failure",
			err:        errors.New("connection reset"),
			wantStatus: "0",
			wantErr:    true,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, log := testlog.NewCapturingLogger()
			req := httptest.NewRequest(http.MethodPut, "https://management.azure.com/subscriptions/sub/resourcegroups/rg", nil)

			res, err := loggingRoundTripper(log, req, func() (*http.Response, error) {
				return tt.res, tt.err
			})
			if res != tt.res || err != tt.err {
				t.Fatal("response was not passed through")
			}

			errs := testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
				{Message: "HttpRequestStart", Level: logrus.DebugLevel},
				{Message: "HttpRequestEnd", Level: logrus.DebugLevel},
			})
			for _, err := range errs {
				t.Error(err)
			}

			end := h.LastEntry()
			if end.Data[responseCode] != tt.wantStatus {
				t.Errorf("got status %v, want %v", end.Data[responseCode], tt.wantStatus)
			}
			if _, ok := end.Data[logrus.ErrorKey]; ok != tt.wantErr {
				t.Errorf("error field present = %v", ok)
			}
			if end.Data["request_URL"] != "management.azure.com/subscriptions/sub/resourcegroups/rg" {
				t.Errorf("unexpected request_URL %v", end.Data["request_URL"])
			}
		})
	}
}
