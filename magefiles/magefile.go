// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the pantry project using Mage.
//
// Usage:
//
//	mage build          Compile pantry binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run tests without the CLI end-to-end package
//	mage test:cover     Run all tests with a coverage profile
//	mage lint           Run golangci-lint
//	mage demo           Build and run the demo against a scratch data dir
//	mage clean          Remove build artifacts
//	mage install        Install pantry to GOPATH/bin
//	mage stats          Print Go LOC counts
package main

const (
	binGo      = "go"
	binaryName = "pantry"
	binaryDir  = "bin"
	cmdDir     = "./cmd/pantry"
)
