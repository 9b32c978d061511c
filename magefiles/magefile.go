//go:build mage

// Package main provides build targets for the stitchmatch project using Mage.
//
// Usage:
//
//	mage build    Compile stitchmatch binary to bin/
//	mage test     Run all tests
//	mage lint     Run golangci-lint
//	mage clean    Remove build artifacts
//	mage install  Install stitchmatch to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "stitchmatch"
	binaryDir  = "bin"
	cmdDir     = "./cmd/stitchmatch"
)

// Build compiles the stitchmatch binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs golangci-lint over the whole module.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds first, then installs stitchmatch to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	return sh.RunV("go", "install", cmdDir)
}
