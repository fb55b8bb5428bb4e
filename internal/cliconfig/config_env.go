package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FRAMEPUMP_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("device", os.Getenv("FRAMEPUMP_DEVICE"), &cfg.Device)

	if err := s.setIntFromString("baud", os.Getenv("FRAMEPUMP_BAUD_RATE"), &cfg.BaudRate); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("FRAMEPUMP_TIMEOUT"), &cfg.Timeout); err != nil {
		return err
	}

	s.setBoolFromString("once", os.Getenv("FRAMEPUMP_ONCE"), &cfg.Once)
	s.setBoolFromString("simulate", os.Getenv("FRAMEPUMP_SIMULATE"), &cfg.Simulate)
	s.setBoolFromString("line-frames", os.Getenv("FRAMEPUMP_LINE_FRAMES"), &cfg.LineFrames)
	s.setBoolFromString("watch", os.Getenv("FRAMEPUMP_WATCH"), &cfg.Watch)

	return nil
}
