package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Guarded wraps step so that its failure does not stop the run. Run logs the
// error, executes the following steps and returns the error at the end.
func Guarded(step Step) Step {
	return guardedStep{step: step}
}

type guardedStep struct {
	step Step
}

func (s guardedStep) run(ctx context.Context, log *logrus.Entry) error {
	return s.step.run(ctx, log)
}

func (s guardedStep) String() string {
	return fmt.Sprintf("[Guarded %s]", s.step)
}

func (s guardedStep) metricsName() string {
	return "guarded." + s.step.metricsName()
}
