package app

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadConfig(t *testing.T) {
	configs = [][]byte{
		[]byte("log:\n  level: debug\n"),
		[]byte("log:\n  dump: warn\n"),
	}

	var cfg struct {
		Mod map[string]string `yaml:"log"`
	}
	cfg.Mod = map[string]string{"level": "info"}

	LoadConfig(&cfg)

	if cfg.Mod["level"] != "debug" {
		t.Errorf("Expected level debug, got %s", cfg.Mod["level"])
	}
	if cfg.Mod["dump"] != "warn" {
		t.Errorf("Expected dump level warn, got %s", cfg.Mod["dump"])
	}
}

func TestGetLogger(t *testing.T) {
	modules["dump"] = "warn"

	logger := GetLogger("dump")
	if lvl := logger.GetLevel(); lvl != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %s", lvl.String())
	}

	logger = GetLogger("nosuch")
	if lvl := logger.GetLevel(); lvl != Logger.GetLevel() {
		t.Errorf("Expected default level, got %s", lvl.String())
	}
}
