// Package cliconfig holds CLI configuration for framepump: defaults, TOML
// file config, environment overrides and flag precedence.
package cliconfig

import (
	"fmt"
	"strconv"
	"time"
)

// DefaultDevice is the USB RS485 adapter path used when none is given.
const DefaultDevice = "/dev/ttyUSB0"

// DefaultBaudRate is the line speed used when none is given.
const DefaultBaudRate = 9600

// Config holds CLI configuration for framepump.
type Config struct {
	Device   string
	BaudRate int
	Timeout  time.Duration

	Once       bool
	Simulate   bool
	LineFrames bool
	Watch      bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Device:   DefaultDevice,
		BaudRate: DefaultBaudRate,
		Timeout:  time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Device == "" && !c.Simulate {
		return fmt.Errorf("device is required")
	}
	if c.BaudRate <= 0 {
		return fmt.Errorf("baud rate must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.Watch && c.Once {
		return fmt.Errorf("watch has no effect with once; pick one")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntFromString parses and sets an int value from a string.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", flag, value, err)
	}
	s.setInt(flag, v, dst)
	return nil
}

// setDuration parses and sets a duration value from a string.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid %s value %q: %w", flag, value, err)
	}
	if d > 0 {
		*dst = d
	}
	return nil
}

// setBool sets a bool value if present and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses and sets a bool value from a string.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	if v, err := strconv.ParseBool(value); err == nil {
		*dst = v
	}
}
