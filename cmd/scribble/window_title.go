package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

const programTitle = "Scribble"

type titleOptions struct {
	File string
}

// windowTitle joins the program name, the file being edited and the release version.
func windowTitle(opts titleOptions) string {
	parts := []string{programTitle}
	if file := strings.TrimSpace(opts.File); file != "" {
		parts = append(parts, filepath.Base(file))
	}
	if v := strings.TrimSpace(version); v != "" && v != "dev" {
		parts = append(parts, fmt.Sprintf("v%s", v))
	}
	return strings.Join(parts, " - ")
}
