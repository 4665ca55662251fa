package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables read by Load
const (
	EnvDeviceNWK    = "DEVICE_NWK"
	EnvDeviceIEEE   = "DEVICE_IEEE"
	EnvModuleFilter = "MODULE_FILTER"
)

// LookupFunc matches the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Overrides holds command-line values that take precedence over the
// environment. A nil field means "not given on the command line".
type Overrides struct {
	DeviceNWK    *string
	DeviceIEEE   *string
	ModuleFilter *string
}

// Load builds the configuration from the process environment and overrides.
func Load(o Overrides) (*Config, error) {
	return LoadFrom(os.LookupEnv, o)
}

// LoadFrom builds the configuration using lookup for environment access.
func LoadFrom(lookup LookupFunc, o Overrides) (*Config, error) {
	nwk := pick(lookup, EnvDeviceNWK, o.DeviceNWK)
	ieee := pick(lookup, EnvDeviceIEEE, o.DeviceIEEE)
	modules := pick(lookup, EnvModuleFilter, o.ModuleFilter)

	cfg := &Config{
		DeviceNWK:  strings.TrimSpace(nwk),
		DeviceIEEE: strings.TrimSpace(ieee),
		Modules:    ParseModuleFilter(modules),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func pick(lookup LookupFunc, key string, override *string) string {
	if override != nil {
		return *override
	}
	if lookup == nil {
		return ""
	}
	value, _ := lookup(key)
	return value
}

// ParseModuleFilter splits a pipe-separated module list. Entries are trimmed
// and empty entries dropped; an empty result falls back to DefaultModules.
func ParseModuleFilter(s string) []string {
	var modules []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			modules = append(modules, part)
		}
	}
	if len(modules) == 0 {
		return append([]string(nil), DefaultModules...)
	}
	return modules
}
