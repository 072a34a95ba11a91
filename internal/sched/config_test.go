package sched

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg := Load("")
	want := defaultConfig()
	if cfg != want {
		t.Fatalf("Load(\"\") = %+v, want %+v", cfg, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if cfg != defaultConfig() {
		t.Fatalf("Load(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	body := "capacity: 0\ntick_ms: 40\ncsv_path: out.csv\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.Capacity != 10 {
		t.Errorf("Capacity = %d, want clamped default 10", cfg.Capacity)
	}
	if cfg.TickMS != 40 {
		t.Errorf("TickMS = %d, want 40", cfg.TickMS)
	}
	if cfg.CSVPath != "out.csv" {
		t.Errorf("CSVPath = %q, want out.csv", cfg.CSVPath)
	}
}
