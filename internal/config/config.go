// Package config resolves the DevKit endpoint and network identity from the
// process environment, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by the tool.
const (
	EnvBaseURL      = "YACI_DEVKIT_URL"
	EnvNetworkMagic = "NETWORK_MAGIC"
	EnvNetworkID    = "NETWORK_ID"
)

// DefaultBaseURL is used when YACI_DEVKIT_URL is unset or empty.
const DefaultBaseURL = "http://localhost:8080/api/v1"

// Config holds everything the status check needs. Values are read once at
// startup and never mutated afterwards.
type Config struct {
	BaseURL      string // DevKit REST API root, without trailing slash
	NetworkMagic string // Displayed verbatim
	NetworkID    string // Displayed verbatim
}

// Load builds a Config from the current environment.
//
// Network identifiers are passed through untouched (an unset variable yields
// an empty string). The base URL falls back to DefaultBaseURL and loses any
// trailing slash so endpoint paths can be appended directly.
func Load() *Config {
	return FromLookup(os.Getenv)
}

// FromLookup is Load with an injectable environment lookup.
func FromLookup(getenv func(string) string) *Config {
	base := strings.TrimSpace(getenv(EnvBaseURL))
	if base == "" {
		base = DefaultBaseURL
	}

	return &Config{
		BaseURL:      strings.TrimRight(base, "/"),
		NetworkMagic: getenv(EnvNetworkMagic),
		NetworkID:    getenv(EnvNetworkID),
	}
}

// LoadEnv reads KEY=VALUE pairs from the given .env file into the process
// environment. Variables already present in the environment are kept.
// A missing file is not an error: the tool works from plain env vars too.
func LoadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
