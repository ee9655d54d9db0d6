package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/google/uuid"

	"github.com/mvhagen/patternbook/internal/lecture"
)

// NewCmd scaffolds a lecture file in the content directory.
type NewCmd struct {
	Title  string `arg:"" help:"Lecture title, e.g. \"Factory Method\""`
	Weight int    `short:"w" default:"100" help:"Ordering weight within the book"`
	Tags   string `help:"Comma-separated tags"`
	Force  bool   `help:"Overwrite an existing lecture file"`
}

const lectureTemplate = `---
title: {{ .Title }}
pattern: {{ .Title }}
weight: {{ .Weight }}
{{- if .Tags }}
tags: [{{ .Tags }}]
{{- end }}
uid: {{ .UID }}
draft: true
---
## Intent

Describe the problem the pattern solves.

## Example

` + "```go\n// example code\n```" + `

## When to use it
`

// Run writes the scaffolded lecture.
func (n *NewCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	slug := lecture.Slugify(n.Title)
	if slug == "" {
		return fmt.Errorf("title %q produces an empty slug", n.Title)
	}
	path := filepath.Join(cfg.Content.Directory, slug+".md")
	if _, err := os.Stat(path); err == nil && !n.Force {
		return fmt.Errorf("lecture already exists: %s (use --force to overwrite)", path)
	}

	tpl := template.Must(template.New("lecture").Parse(lectureTemplate))
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, map[string]any{
		"Title":  n.Title,
		"Weight": n.Weight,
		"Tags":   n.Tags,
		"UID":    uuid.NewString(),
	}); err != nil {
		return fmt.Errorf("render lecture template: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	fmt.Printf("Created %s (draft)\n", path)
	return nil
}
