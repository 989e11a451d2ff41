// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Build compiles the pantry binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, binaryPath())
}

// Demo builds pantry and runs its demo command against a scratch data
// directory, removed afterwards.
func Demo() error {
	mg.Deps(Build)
	scratch, err := os.MkdirTemp("", "pantry-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(scratch)

	return sh.RunV(binaryPath(),
		"--config-dir", filepath.Join(scratch, "config"),
		"--data-dir", filepath.Join(scratch, "data"),
		"--log-level", "debug",
		"demo")
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
