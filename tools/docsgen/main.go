// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/difftree/internal/command"
)

type Flag struct {
	Syntax      string
	Description string
	Default     string
	Env         []string
}

type TemplateData struct {
	Name      string
	Usage     string
	ArgsUsage string
	Flags     []Flag
	Date      string
	Version   string
	NameUpper string
}

type Outputs struct {
	Template string
	Folder   string
	File     string
}

const markdownTemplate = `# {{ .Name }}

{{ .Usage }}

    {{ .Name }} [options] {{ .ArgsUsage }}

## Options

| Flag | Description | Default | Environment |
|---|---|---|---|
{{- range .Flags }}
| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} | {{ join .Env ", " }} |
{{- end }}

_Version {{ .Version }}, generated {{ .Date }}._
`

const manTemplate = `.TH {{ .NameUpper }} 1 "{{ .Date }}" "{{ .Version }}"
.SH NAME
{{ .Name }} \- {{ .Usage }}
.SH SYNOPSIS
.B {{ .Name }}
[options] {{ .ArgsUsage }}
.SH OPTIONS
{{- range .Flags }}
.TP
.B {{ .Syntax }}
{{ .Description }}{{ if .Default }} (default: {{ .Default }}){{ end }}
{{- end }}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs dir>")
		os.Exit(1)
	}
	docs := os.Args[1]

	app, err := command.InitApp(context.Background(), []string{"difftree"})
	if err != nil {
		panic(err)
	}
	metadata := templateData(app, time.Now(), getVersion())

	types := []Outputs{
		{Template: markdownTemplate, Folder: filepath.Join(docs, "commands"), File: "difftree.md"},
		{Template: manTemplate, Folder: filepath.Join(docs, "man", "share", "man1"), File: "difftree.1"},
	}

	for _, t := range types {
		if err := os.MkdirAll(t.Folder, 0755); err != nil {
			panic(err)
		}

		path := filepath.Join(t.Folder, t.File)
		fmt.Println("Generating", path)
		file, err := os.Create(path)
		if err != nil {
			panic(err)
		}
		if err := render(file, t.Template, metadata); err != nil {
			panic(err)
		}
		file.Close()
	}
}

// templateData collects what the templates show about app.
func templateData(app *cli.Command, now time.Time, version string) TemplateData {
	var flags []Flag
	for _, f := range app.Flags {
		names := f.Names()
		if names[0] == "help" {
			continue
		}

		var syntax []string
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{Syntax: strings.Join(syntax, ", ")}
		if d, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = d.GetUsage()
			flag.Env = d.GetEnvVars()
			if d.TakesValue() {
				flag.Default = d.GetValue()
			}
		}
		flags = append(flags, flag)
	}

	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Syntax < flags[j].Syntax
	})

	return TemplateData{
		Name:      app.Name,
		Usage:     app.Usage,
		ArgsUsage: app.ArgsUsage,
		Flags:     flags,
		Date:      now.Format("January 2, 2006"),
		Version:   version,
		NameUpper: strings.ToUpper(app.Name),
	}
}

func render(w io.Writer, text string, data TemplateData) error {
	tmpl, err := template.New("doc").Funcs(template.FuncMap{"join": strings.Join}).Parse(text)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
