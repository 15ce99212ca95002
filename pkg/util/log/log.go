package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh/terminal"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
)

// GetLogger returns a consistently configured log entry. level is parsed with
// logrus.ParseLevel; an empty or unparseable level falls back to info.
func GetLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetReportCaller(true)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		ForceColors:      terminal.IsTerminal(int(os.Stderr.Fd())),
		CallerPrettyfier: RelativeFilePathPrettier,
	})

	l, err := logrus.ParseLevel(level)
	if err != nil {
		l = logrus.InfoLevel
	}
	logger.SetLevel(l)

	return logrus.NewEntry(logger)
}

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// WithComponent returns log annotated with the given component name.
func WithComponent(log *logrus.Entry, component string) *logrus.Entry {
	return log.WithField("component", strings.ReplaceAll(strings.ToLower(component), "_", "-"))
}
