package azureerrors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

const (
	CODE_AUTHFAILED       = "AuthorizationFailed"
	CODE_INVALIDAUTHTOKEN = "InvalidAuthenticationToken"
	CODE_RGNOTFOUND       = "ResourceGroupNotFound"
	CODE_QUOTAEXCEEDED    = "QuotaExceeded"
	CODE_SKUNOTAVAILABLE  = "SkuNotAvailable"
)

func responseError(err error) (*azcore.ResponseError, bool) {
	var responseError *azcore.ResponseError
	if errors.As(err, &responseError) {
		return responseError, true
	}
	return nil, false
}

// HasAuthorizationFailedError returns true it the error is, or contains, an
// AuthorizationFailed error
func HasAuthorizationFailedError(err error) bool {
	if re, ok := responseError(err); ok {
		return re.ErrorCode == CODE_AUTHFAILED
	}
	return false
}

// IsUnauthenticatedError returns true if ARM rejected the request's token, which
// is what happens once the az CLI session has expired.
func IsUnauthenticatedError(err error) bool {
	if re, ok := responseError(err); ok {
		return re.StatusCode == http.StatusUnauthorized || re.ErrorCode == CODE_INVALIDAUTHTOKEN
	}
	return false
}

func IsNotFoundError(err error) bool {
	if re, ok := responseError(err); ok {
		return re.StatusCode == http.StatusNotFound
	}
	return false
}

// ResourceGroupNotFound returns true if the error is an ResourceGroupNotFound error
func ResourceGroupNotFound(err error) bool {
	if re, ok := responseError(err); ok {
		return re.ErrorCode == CODE_RGNOTFOUND
	}
	return false
}

// IsVMCapacityError returns true when the requested VM size cannot be placed,
// either because the SKU is unavailable in the location or quota ran out.
func IsVMCapacityError(err error) bool {
	if re, ok := responseError(err); ok {
		return re.ErrorCode == CODE_SKUNOTAVAILABLE || re.ErrorCode == CODE_QUOTAEXCEEDED
	}
	return false
}

// IsRetryableError returns true if the error is a transient/retryable error
// such as 429 Too Many Requests or contains RetryableError code
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	if re, ok := responseError(err); ok && re.StatusCode == http.StatusTooManyRequests {
		return true
	}

	return strings.Contains(err.Error(), "RetryableError")
}
