package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

// actionFunction is a function that takes a context and returns an error.
//
// Suitable for performing tasks.
type actionFunction func(context.Context) error

// Action returns a Step which will execute the action function `f`. Errors from
// `f` are returned directly.
func Action(f actionFunction) Step {
	return actionStep{f: f}
}

// WrappedAction is like Action, but names the step after originalFunc. Use it
// when f is a closure around a function that takes more arguments.
func WrappedAction(originalFunc interface{}, f actionFunction) Step {
	return actionStep{
		f:           f,
		wrappedName: FriendlyName(originalFunc),
	}
}

type actionStep struct {
	f           actionFunction
	wrappedName string
}

func (s actionStep) run(ctx context.Context, log *logrus.Entry) error {
	return s.f(ctx)
}

func (s actionStep) name() string {
	if s.wrappedName != "" {
		return s.wrappedName
	}
	return FriendlyName(s.f)
}

func (s actionStep) String() string {
	return fmt.Sprintf("[Action %s]", s.name())
}

func (s actionStep) metricsName() string {
	return fmt.Sprintf("action.%s", shortName(s.name()))
}
