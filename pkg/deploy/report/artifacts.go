package report

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"github.com/kballard/go-shellquote"
)

//go:embed templates
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"shellquote": shellquote.Join,
	"shellargs":  shellArgs,
}).ParseFS(templatesFS, "templates/*.tmpl"))

func shellArgs(args []string) string {
	return shellquote.Join(args...)
}

const (
	ConnectivityScript = "test-connectivity.sh"
	DeploymentDoc      = "DEPLOYMENT.md"
)

var artifacts = []struct {
	name     string
	template string
	mode     os.FileMode
}{
	{name: ConnectivityScript, template: "test-connectivity.sh.tmpl", mode: 0o755},
	{name: DeploymentDoc, template: "DEPLOYMENT.md.tmpl", mode: 0o644},
}

// WriteArtifacts renders the connectivity script and the deployment document
// into dir and returns the paths written.
func (r *Report) WriteArtifacts(dir string) ([]string, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		buf := &bytes.Buffer{}
		err = templates.ExecuteTemplate(buf, a.template, r)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, a.name)
		err = os.WriteFile(path, buf.Bytes(), a.mode)
		if err != nil {
			return nil, err
		}

		// WriteFile leaves the mode of an existing file alone
		err = os.Chmod(path, a.mode)
		if err != nil {
			return nil, err
		}

		paths = append(paths, path)
	}

	return paths, nil
}
