package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"

	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry describes a log line a test expects to see.
type ExpectedLogEntry struct {
	// Message is matched exactly. Conflicts with MessageRegex.
	Message string

	// MessageRegex is matched as a regular expression. Conflicts with Message.
	MessageRegex string

	Level logrus.Level
}

func (ex ExpectedLogEntry) mismatch(e logrus.Entry) string {
	switch {
	case ex.Message != "" && ex.MessageRegex != "":
		return "ExpectedLogEntry has both Message and MessageRegex set"
	case e.Level != ex.Level:
		return fmt.Sprintf("level: found %s, expected %s", e.Level, ex.Level)
	case ex.Message != "":
		if e.Message != ex.Message {
			return fmt.Sprintf("message: found `%s`, expected `%s`", e.Message, ex.Message)
		}
	case ex.MessageRegex != "":
		matched, err := regexp.MatchString(ex.MessageRegex, e.Message)
		if err != nil {
			return err.Error()
		}
		if !matched {
			return fmt.Sprintf("message: found `%s`, expected to match `%s`", e.Message, ex.MessageRegex)
		}
	default:
		return "ExpectedLogEntry has neither Message nor MessageRegex set"
	}

	return ""
}

// NewCapturingLogger creates a logging hook and entry suitable for passing to
// functions and asserting on.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return h, logrus.NewEntry(logger)
}

// AssertLoggingOutput compares the entries captured by h with expected, in
// order. It returns one error per mismatch.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()
	if len(entries) != len(expected) {
		errs := []error{fmt.Errorf("got %d logs, expected %d", len(entries), len(expected))}
		for i, e := range entries {
			errs = append(errs, fmt.Errorf("log #%d - %s: %s", i, e.Level, e.Message))
		}
		return errs
	}

	var errs []error
	for i, e := range entries {
		if m := expected[i].mismatch(*e); m != "" {
			errs = append(errs, fmt.Errorf("log #%d - %s", i, m))
		}
	}
	return errs
}

// AssertContainsEntries checks that every expected entry appears in h, in
// order, allowing unrelated entries in between.
func AssertContainsEntries(h *logrus_test.Hook, expected []ExpectedLogEntry) []error {
	entries := h.AllEntries()
	i := 0
	for _, e := range entries {
		if i < len(expected) && expected[i].mismatch(*e) == "" {
			i++
		}
	}
	if i == len(expected) {
		return nil
	}

	errs := []error{fmt.Errorf("expected entry #%d (%s %q%q) not found", i, expected[i].Level, expected[i].Message, expected[i].MessageRegex)}
	for j, e := range entries {
		errs = append(errs, fmt.Errorf("log #%d - %s: %s", j, e.Level, e.Message))
	}
	return errs
}
