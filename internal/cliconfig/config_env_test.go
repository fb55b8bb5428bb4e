package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("FRAMEPUMP_DEVICE", "/dev/ttyUSB5")
	t.Setenv("FRAMEPUMP_BAUD_RATE", "38400")
	t.Setenv("FRAMEPUMP_TIMEOUT", "500ms")
	t.Setenv("FRAMEPUMP_ONCE", "true")
	t.Setenv("FRAMEPUMP_SIMULATE", "1")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.Device != "/dev/ttyUSB5" {
		t.Errorf("Device = %q, want /dev/ttyUSB5", cfg.Device)
	}
	if cfg.BaudRate != 38400 {
		t.Errorf("BaudRate = %d, want 38400", cfg.BaudRate)
	}
	if cfg.Timeout != 500*time.Millisecond {
		t.Errorf("Timeout = %v, want 500ms", cfg.Timeout)
	}
	if !cfg.Once {
		t.Error("Once not applied")
	}
	if !cfg.Simulate {
		t.Error("Simulate not applied")
	}
}

func TestApplyEnvConfig_FlagPrecedence(t *testing.T) {
	t.Setenv("FRAMEPUMP_DEVICE", "/dev/from-env")
	t.Setenv("FRAMEPUMP_BAUD_RATE", "38400")

	cfg := DefaultConfig()
	cfg.Device = "/dev/from-flag"
	cfg.BaudRate = 57600
	changed := map[string]bool{"device": true, "baud": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.Device != "/dev/from-flag" {
		t.Errorf("Device = %q, flag value should win", cfg.Device)
	}
	if cfg.BaudRate != 57600 {
		t.Errorf("BaudRate = %d, flag value should win", cfg.BaudRate)
	}
}

func TestApplyEnvConfig_InvalidValues(t *testing.T) {
	t.Setenv("FRAMEPUMP_BAUD_RATE", "fast")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() error = nil for invalid baud rate")
	}

	t.Setenv("FRAMEPUMP_BAUD_RATE", "")
	t.Setenv("FRAMEPUMP_TIMEOUT", "whenever")
	cfg = DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err == nil {
		t.Error("ApplyEnvConfig() error = nil for invalid timeout")
	}

	// Invalid booleans are ignored, not errors, matching flag semantics for
	// optional toggles.
	t.Setenv("FRAMEPUMP_TIMEOUT", "")
	t.Setenv("FRAMEPUMP_ONCE", "maybe")
	cfg = DefaultConfig()
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Errorf("ApplyEnvConfig() error = %v", err)
	}
	if cfg.Once {
		t.Error("Once applied from invalid boolean")
	}
}
