//go:build mage

// Package main contains Mage build targets for boldkey.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "boldkey"
	cmdPkg  = "./cmd/boldkey"
)

// Default target to run when none is specified.
var Default = Build

// Icons regenerates the tray icons in embedded/.
func Icons() error {
	return sh.RunV("go", "run", "scripts/generate_icons.go", "embedded")
}

// Build compiles the binary into bin/. VERSION sets the reported version.
func Build() error {
	mg.Deps(Icons)

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	if ext := os.Getenv("GOEXE"); ext != "" {
		out += ext
	}

	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	ldflags := "-X main.Version=" + version
	if err := sh.RunV("go", "build", "-ldflags", ldflags, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
