package config

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

// DefaultModules lists the Zigbee stacks Home Assistant ships with.
var DefaultModules = []string{"zigpy", "zha", "bellows", "zigpy_znp", "zigpy_deconz"}

// Config is the filter configuration captured once at startup.
// It is never modified after Load returns.
type Config struct {
	DeviceNWK  string   `yaml:"device_nwk"`  // Target short address, e.g. "0x92A7" ("" = any)
	DeviceIEEE string   `yaml:"device_ieee"` // Target EUI-64, e.g. "00:12:4b:00:12:34:56:78" ("" = any)
	Modules    []string `yaml:"modules"`     // Module-name substrings a line must contain
}

// HasDeviceFilter reports whether a target device has been configured.
func (c *Config) HasDeviceFilter() bool {
	return c.DeviceNWK != "" || c.DeviceIEEE != ""
}

// DeviceLabel returns the configured device address used when a line does not
// carry one, or fallback when no device is configured.
func (c *Config) DeviceLabel(fallback string) string {
	switch {
	case c.DeviceNWK != "":
		return c.DeviceNWK
	case c.DeviceIEEE != "":
		return c.DeviceIEEE
	default:
		return fallback
	}
}

// Validate rejects values that could never appear inside a single log line.
func (c *Config) Validate() error {
	if len(c.Modules) == 0 {
		return fmt.Errorf("module filter is empty")
	}
	if err := checkPrintable("device NWK", c.DeviceNWK); err != nil {
		return err
	}
	if err := checkPrintable("device IEEE", c.DeviceIEEE); err != nil {
		return err
	}
	for _, m := range c.Modules {
		if err := checkPrintable("module", m); err != nil {
			return err
		}
	}
	return nil
}

func checkPrintable(field, value string) error {
	for _, r := range value {
		if unicode.IsControl(r) {
			return fmt.Errorf("%s %q contains a control character", field, value)
		}
	}
	return nil
}

// ModuleFilter returns the modules joined back into MODULE_FILTER form.
func (c *Config) ModuleFilter() string {
	return strings.Join(c.Modules, "|")
}

// YAML renders the configuration for the "config" command.
func (c *Config) YAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
