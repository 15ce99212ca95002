package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// FriendlyName returns a "friendly" stringified name of the given func.
func FriendlyName(f interface{}) string {
	return strings.TrimSuffix(runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name(), "-fm")
}

// shortName trims the package path and receiver from a friendly name,
// e.g. "github.com/x/pkg/deploy.(*deployer).ensureNetwork" -> "ensureNetwork".
func shortName(name string) string {
	return name[strings.LastIndexByte(name, '.')+1:]
}

// Step is the interface for steps that Runner can execute.
type Step interface {
	run(ctx context.Context, log *logrus.Entry) error
	String() string
	metricsName() string
}

// Run executes the provided steps in order until one fails or all steps are
// completed. Errors from failed steps are returned directly, except for
// Guarded steps: their errors are logged, the remaining steps still run and
// the collected errors are returned once every step has completed. The
// returned map holds the wall time each executed step took.
func Run(ctx context.Context, log *logrus.Entry, steps []Step) (map[string]time.Duration, error) {
	stepTimeRun := make(map[string]time.Duration, len(steps))
	var guarded *multierror.Error

	for _, step := range steps {
		log.Infof("running step %s", step)
		startTime := time.Now()
		err := step.run(ctx, log)
		stepTimeRun[step.metricsName()] = time.Since(startTime)

		if err != nil {
			if _, ok := step.(guardedStep); ok {
				log.Warnf("step %s encountered error, continuing: %s", step, err.Error())
				guarded = multierror.Append(guarded, err)
				continue
			}
			log.Errorf("step %s encountered error: %s", step, err.Error())
			return stepTimeRun, err
		}
	}

	return stepTimeRun, guarded.ErrorOrNil()
}
