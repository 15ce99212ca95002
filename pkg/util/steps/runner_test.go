package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	utilerror "github.com/Azure/tierdeploy/test/util/error"
	testlog "github.com/Azure/tierdeploy/test/util/log"
)

func successfulFunc(context.Context) error { return nil }
func failingFunc(context.Context) error    { return errors.New("oh no!") }

type fakeDeployer struct {
	calls []string
}

func (d *fakeDeployer) ensureNetwork(ctx context.Context, name string) error {
	d.calls = append(d.calls, name)
	return nil
}

func TestStepRunner(t *testing.T) {
	for _, tt := range []struct {
		name        string
		steps       []Step
		wantEntries []testlog.ExpectedLogEntry
		wantTimings []string
		wantErr     string
	}{
		{
			name: "All successful Actions will have a successful run",
			steps: []Step{
				Action(successfulFunc),
				Action(successfulFunc),
				Action(successfulFunc),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
			},
			wantTimings: []string{"action.successfulFunc"},
		},
		{
			name: "A failing Action will fail the run",
			steps: []Step{
				Action(successfulFunc),
				Action(failingFunc),
				Action(successfulFunc),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: `step [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc] encountered error: oh no!`,
					Level:   logrus.ErrorLevel,
				},
			},
			wantTimings: []string{"action.successfulFunc", "action.failingFunc"},
			wantErr:     "oh no!",
		},
		{
			name: "A failing Guarded step lets the run continue and fails it at the end",
			steps: []Step{
				Action(successfulFunc),
				Guarded(Action(failingFunc)),
				Action(successfulFunc),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Guarded [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc]]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "step [Guarded [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc]] encountered error, continuing: oh no!",
					Level:   logrus.WarnLevel,
				},
				{
					Message: "running step [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
			},
			wantTimings: []string{"action.successfulFunc", "guarded.action.failingFunc"},
			wantErr:     "1 error occurred:\n\t* oh no!\n\n",
		},
		{
			name: "A successful Guarded step is transparent",
			steps: []Step{
				Guarded(Action(successfulFunc)),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Guarded [Action github.com/Azure/tierdeploy/pkg/util/steps.successfulFunc]]",
					Level:   logrus.InfoLevel,
				},
			},
			wantTimings: []string{"guarded.action.successfulFunc"},
		},
		{
			name: "An unguarded failure after a guarded one returns the unguarded error",
			steps: []Step{
				Guarded(Action(failingFunc)),
				Action(func(context.Context) error { return errors.New("fatal") }),
			},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Guarded [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc]]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "step [Guarded [Action github.com/Azure/tierdeploy/pkg/util/steps.failingFunc]] encountered error, continuing: oh no!",
					Level:   logrus.WarnLevel,
				},
				{
					MessageRegex: `running step \[Action github.com/Azure/tierdeploy/pkg/util/steps\.TestStepRunner\.func\d+]`,
					Level:        logrus.InfoLevel,
				},
				{
					MessageRegex: `step \[Action github.com/Azure/tierdeploy/pkg/util/steps\.TestStepRunner\.func\d+] encountered error: fatal`,
					Level:        logrus.ErrorLevel,
				},
			},
			wantErr: "fatal",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()

			h, log := testlog.NewCapturingLogger()

			timings, err := Run(ctx, log, tt.steps)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, e := range testlog.AssertLoggingOutput(h, tt.wantEntries) {
				t.Error(e)
			}

			for _, name := range tt.wantTimings {
				if _, ok := timings[name]; !ok {
					t.Errorf("missing timing for %s in %v", name, timings)
				}
			}
		})
	}
}

func TestWrappedActionName(t *testing.T) {
	d := &fakeDeployer{}

	step := WrappedAction(d.ensureNetwork, func(ctx context.Context) error {
		return d.ensureNetwork(ctx, "vnet")
	})

	if got, want := step.String(), "[Action github.com/Azure/tierdeploy/pkg/util/steps.(*fakeDeployer).ensureNetwork]"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := step.metricsName(), "action.ensureNetwork"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, log := testlog.NewCapturingLogger()
	_, err := Run(context.Background(), log, []Step{step})
	if err != nil {
		t.Fatal(err)
	}
	if len(d.calls) != 1 || d.calls[0] != "vnet" {
		t.Errorf("unexpected calls %v", d.calls)
	}
}
