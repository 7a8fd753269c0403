//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/sh"
)

// Build compiles the polyglot binary
func Build() error {
	return sh.Run("go", "build", "-o", "polyglot", "./cmd/polyglot")
}

// Test runs all tests
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.Run("go", "vet", "./...")
}

// Install installs the polyglot binary
func Install() error {
	return sh.Run("go", "install", "./cmd/polyglot")
}

// Clean removes build artifacts
func Clean() error {
	if err := os.Remove("polyglot"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
