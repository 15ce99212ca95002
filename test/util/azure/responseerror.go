package azure

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// NewResponseError returns the *azcore.ResponseError the SDK would produce
// for an ARM error response with the given status and error code.
func NewResponseError(statusCode int, code string) error {
	req, err := http.NewRequest(http.MethodGet, "https://management.azure.com/subscriptions/00000000-0000-0000-0000-000000000000", nil)
	if err != nil {
		panic(err)
	}

	body := fmt.Sprintf(`{"error":{"code":%q,"message":"test %s"}}`, code, code)

	return runtime.NewResponseError(&http.Response{
		StatusCode: statusCode,
		Status:     fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	})
}
