package preflight

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkarmsubscriptions "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	"github.com/Azure/tierdeploy/pkg/util/azureerrors"
	mock_armsubscriptions "github.com/Azure/tierdeploy/pkg/util/mocks/azureclient/azuresdk/armsubscriptions"
	testazure "github.com/Azure/tierdeploy/test/util/azure"
	utilerror "github.com/Azure/tierdeploy/test/util/error"
	testlog "github.com/Azure/tierdeploy/test/util/log"
)

const subscriptionID = "00000000-0000-0000-0000-000000000000"

func subscription(id string, state sdkarmsubscriptions.SubscriptionState) *sdkarmsubscriptions.Subscription {
	return &sdkarmsubscriptions.Subscription{
		SubscriptionID: to.Ptr(id),
		DisplayName:    to.Ptr("sub-" + id[:4]),
		State:          to.Ptr(state),
	}
}

func TestCheckCLI(t *testing.T) {
	defer func(f func(string) (string, error)) { lookPath = f }(lookPath)

	lookPath = func(file string) (string, error) {
		if file != "az" {
			t.Errorf("looked up %q", file)
		}
		return "/usr/bin/az", nil
	}
	if err := CheckCLI(); err != nil {
		t.Error(err)
	}

	lookPath = func(string) (string, error) { return "", errors.New("executable file not found in $PATH") }
	utilerror.AssertErrorMessage(t, CheckCLI(), `azure CLI "az" not found in PATH`)
}

func TestCheckSession(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name           string
		subscriptionID string
		mocks          func(*mock_armsubscriptions.MockSubscriptionsClient)
		wantID         string
		wantLog        string
		wantErr        string
		wantErrCheck   func(error) bool
	}{
		{
			name:           "configured subscription",
			subscriptionID: subscriptionID,
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().Get(gomock.Any(), subscriptionID, nil).Return(sdkarmsubscriptions.ClientGetResponse{
					Subscription: *subscription(subscriptionID, sdkarmsubscriptions.SubscriptionStateEnabled),
				}, nil)
			},
			wantID:  subscriptionID,
			wantLog: "using subscription 00000000-0000-0000-0000-000000000000 (sub-0000)",
		},
		{
			name:           "configured subscription is disabled",
			subscriptionID: subscriptionID,
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().Get(gomock.Any(), subscriptionID, nil).Return(sdkarmsubscriptions.ClientGetResponse{
					Subscription: *subscription(subscriptionID, sdkarmsubscriptions.SubscriptionStateWarned),
				}, nil)
			},
			wantErr: "subscription 00000000-0000-0000-0000-000000000000 is Warned",
		},
		{
			name:           "not logged in",
			subscriptionID: subscriptionID,
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().Get(gomock.Any(), subscriptionID, nil).Return(sdkarmsubscriptions.ClientGetResponse{}, errors.New("AzureCLICredential: Please run 'az login' to set up an account"))
			},
			wantErr: `not logged in to Azure, run "az login": AzureCLICredential: Please run 'az login' to set up an account`,
		},
		{
			name:           "not authorized",
			subscriptionID: subscriptionID,
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().Get(gomock.Any(), subscriptionID, nil).Return(sdkarmsubscriptions.ClientGetResponse{}, testazure.NewResponseError(http.StatusForbidden, azureerrors.CODE_AUTHFAILED))
			},
			wantErrCheck: azureerrors.HasAuthorizationFailedError,
		},
		{
			name:           "session expired",
			subscriptionID: subscriptionID,
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().Get(gomock.Any(), subscriptionID, nil).Return(sdkarmsubscriptions.ClientGetResponse{}, testazure.NewResponseError(http.StatusUnauthorized, azureerrors.CODE_INVALIDAUTHTOKEN))
			},
			wantErrCheck: func(err error) bool {
				return azureerrors.IsUnauthenticatedError(err) &&
					strings.HasPrefix(err.Error(), `az login session expired, run "az login": `)
			},
		},
		{
			name: "single enabled subscription",
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().List(gomock.Any()).Return([]*sdkarmsubscriptions.Subscription{
					subscription("11111111-0000-0000-0000-000000000000", sdkarmsubscriptions.SubscriptionStateDisabled),
					subscription(subscriptionID, sdkarmsubscriptions.SubscriptionStateEnabled),
				}, nil)
			},
			wantID:  subscriptionID,
			wantLog: "using subscription 00000000-0000-0000-0000-000000000000 (sub-0000)",
		},
		{
			name: "several enabled subscriptions",
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().List(gomock.Any()).Return([]*sdkarmsubscriptions.Subscription{
					subscription("11111111-0000-0000-0000-000000000000", sdkarmsubscriptions.SubscriptionStateEnabled),
					subscription(subscriptionID, sdkarmsubscriptions.SubscriptionStateEnabled),
				}, nil)
			},
			wantErr: "2 subscriptions are enabled (11111111-0000-0000-0000-000000000000, 00000000-0000-0000-0000-000000000000), set AZURE_SUBSCRIPTION_ID",
		},
		{
			name: "no subscriptions",
			mocks: func(sc *mock_armsubscriptions.MockSubscriptionsClient) {
				sc.EXPECT().List(gomock.Any()).Return(nil, nil)
			},
			wantErr: "no enabled subscription is visible to the current az login session",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			sc := mock_armsubscriptions.NewMockSubscriptionsClient(controller)
			tt.mocks(sc)

			h, log := testlog.NewCapturingLogger()

			id, err := CheckSession(ctx, log, sc, tt.subscriptionID)
			if tt.wantErrCheck != nil {
				if err == nil || !tt.wantErrCheck(err) {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if id != tt.wantID {
				t.Errorf("got subscription %q, want %q", id, tt.wantID)
			}

			if tt.wantLog != "" {
				for _, e := range testlog.AssertLoggingOutput(h, []testlog.ExpectedLogEntry{
					{Message: tt.wantLog, Level: logrus.InfoLevel},
				}) {
					t.Error(e)
				}
			}
		})
	}
}

func TestRun(t *testing.T) {
	defer func(f func(string) (string, error)) { lookPath = f }(lookPath)
	defer func(bits int) { keyBits = bits }(keyBits)
	keyBits = 2048

	ctx := context.Background()
	keyPath := filepath.Join(t.TempDir(), "id_rsa")

	t.Run("success", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "/usr/bin/az", nil }

		controller := gomock.NewController(t)
		defer controller.Finish()

		sc := mock_armsubscriptions.NewMockSubscriptionsClient(controller)
		sc.EXPECT().List(gomock.Any()).Return([]*sdkarmsubscriptions.Subscription{
			subscription(subscriptionID, sdkarmsubscriptions.SubscriptionStateEnabled),
		}, nil)

		h, log := testlog.NewCapturingLogger()

		r, err := Run(ctx, log, sc, "", keyPath)
		if err != nil {
			t.Fatal(err)
		}
		if r.SubscriptionID != subscriptionID || r.SSHPublicKey == "" {
			t.Errorf("got %#v", r)
		}

		for _, e := range testlog.AssertContainsEntries(h, []testlog.ExpectedLogEntry{
			{Message: "running step [Action github.com/Azure/tierdeploy/pkg/preflight.CheckCLI]", Level: logrus.InfoLevel},
			{Message: "running step [Action github.com/Azure/tierdeploy/pkg/preflight.CheckSession]", Level: logrus.InfoLevel},
			{Message: "running step [Action github.com/Azure/tierdeploy/pkg/preflight.EnsureSSHKey]", Level: logrus.InfoLevel},
		}) {
			t.Error(e)
		}
	})

	t.Run("missing CLI stops before the session check", func(t *testing.T) {
		lookPath = func(string) (string, error) { return "", errors.New("not found") }

		controller := gomock.NewController(t)
		defer controller.Finish()

		_, log := testlog.NewCapturingLogger()

		_, err := Run(ctx, log, mock_armsubscriptions.NewMockSubscriptionsClient(controller), "", keyPath)
		utilerror.AssertErrorMessage(t, err, `azure CLI "az" not found in PATH`)
	})
}
