package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chris-regnier/termcal/internal/config"
	"github.com/chris-regnier/termcal/internal/logging"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("TERMCAL_DATA_DIR", dir)
	m, err := config.Load(filepath.Join(dir, "config.json"), logging.Discard())
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	cfg, err := m.Config()
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	cfgManager, appConfig = m, cfg
}

func TestConfigShow(t *testing.T) {
	setupTestEnv(t)
	setupTestConfig(t)

	var buf bytes.Buffer
	if err := configShowRun(&buf); err != nil {
		t.Fatalf("configShowRun: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# "+cfgManager.Path()+"\n") {
		t.Errorf("missing path header:\n%s", out)
	}
	for _, want := range []string{"country = US", "agenda_days = 30", "theme.preset = default-dark"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestConfigSet(t *testing.T) {
	setupTestEnv(t)
	setupTestConfig(t)

	var buf bytes.Buffer
	if err := configSetRun(&buf, "country", "gb"); err != nil {
		t.Fatalf("configSetRun: %v", err)
	}
	if buf.String() != "country = GB\n" {
		t.Errorf("output = %q", buf.String())
	}
	if appConfig.Country != "GB" {
		t.Errorf("appConfig.Country = %q", appConfig.Country)
	}

	reloaded, err := config.Load(cfgManager.Path(), logging.Discard())
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	cfg, _ := reloaded.Config()
	if cfg.Country != "GB" {
		t.Errorf("persisted country = %q", cfg.Country)
	}
}

func TestConfigSetInvalid(t *testing.T) {
	setupTestEnv(t)
	setupTestConfig(t)

	tests := []struct{ key, value string }{
		{"colour", "red"},
		{"agenda_days", "many"},
		{"agenda_days", "0"},
		{"show_holidays", "maybe"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		err := configSetRun(&buf, tt.key, tt.value)
		if !errors.Is(err, config.ErrInvalid) {
			t.Errorf("Set(%s, %s) err = %v, want ErrInvalid", tt.key, tt.value, err)
		}
	}
	if appConfig.AgendaDays != 30 {
		t.Errorf("agenda_days = %d after failed sets", appConfig.AgendaDays)
	}
}
