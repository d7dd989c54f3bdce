// Package testutil provides common utility functions for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
)

// PolicyBounds returns the default input policy limits.
func PolicyBounds() validation.Bounds {
	return validation.Bounds{
		MinPrincipal: constants.MinPrincipal,
		MaxPrincipal: constants.MaxPrincipal,
		MinRate:      constants.MinAnnualRate,
		MaxRate:      constants.MaxAnnualRate,
		MinTerm:      constants.MinTermYears,
		MaxTerm:      constants.MaxTermYears,
	}
}

// WriteConfig writes a YAML config file into a temporary directory and
// returns its path.
func WriteConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), constants.DefaultConfigFile)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

// MissingConfig returns a config path that does not exist, so loading it
// yields the defaults.
func MissingConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "missing.yaml")
}
