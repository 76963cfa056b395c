// Package config loads the optional drivermatch.lua configuration file.
//
// Configs are declarative Lua, executed in a sandboxed VM with a read-only
// platform table injected, so a single config file can vary by host:
//
//	drivermatch = {
//	    strict = true,
//	    browser = {
//	        commands = platform.is_linux and { "chromium" } or nil,
//	    },
//	}
//
// A missing config file is not an error; Default() applies.
package config

import "fmt"

// Filename is the config file looked up in the working directory.
const Filename = "drivermatch.lua"

// Config holds all run-time configuration.
type Config struct {
	// CatalogURL overrides the known-good-versions endpoint.
	CatalogURL string
	// Dir is the directory the driver is installed into. Empty means the
	// working directory.
	Dir string
	// Strict makes a failed resolution (no catalog entry for the detected
	// major version and platform) a fatal error instead of a logged no-op.
	Strict bool
	// BrowserCommands overrides the candidate browser executables tried on
	// Unix hosts.
	BrowserCommands []string
	// BrowserPaths overrides the candidate chrome.exe paths inspected on
	// Windows hosts.
	BrowserPaths []string
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Validate checks the extracted configuration for values that cannot work.
func (c *Config) Validate() error {
	for _, command := range c.BrowserCommands {
		if command == "" {
			return fmt.Errorf("browser.commands contains an empty entry")
		}
	}
	for _, path := range c.BrowserPaths {
		if path == "" {
			return fmt.Errorf("browser.paths contains an empty entry")
		}
	}
	return nil
}
