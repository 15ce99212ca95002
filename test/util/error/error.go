package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"
	"testing"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	switch {
	case err == nil && wantMsg != "":
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	case err != nil && err.Error() != wantMsg:
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertErrorContains asserts that err is non-nil and its message contains
// every one of substrings.
func AssertErrorContains(t *testing.T, err error, substrings ...string) {
	t.Helper()

	if err == nil {
		t.Errorf("did not get an error, but wanted one containing %q", substrings)
		return
	}

	for _, s := range substrings {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("got error '%v', which does not contain '%s'", err, s)
		}
	}
}
