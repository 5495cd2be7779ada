package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_ValidYAML_PopulatesAllFields(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "valid.yaml")
	content := `addr: "0.0.0.0:9090"
db_path: "/var/lib/delivery/logger.db"
template_path: "/etc/delivery/payroll_template.xlsx"
shutdown_timeout: "5s"`
	err := os.WriteFile(path, []byte(content), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != "0.0.0.0:9090" {
		t.Errorf("expected Addr=0.0.0.0:9090, got %s", cfg.Addr)
	}
	if cfg.DBPath != "/var/lib/delivery/logger.db" {
		t.Errorf("expected DBPath=/var/lib/delivery/logger.db, got %s", cfg.DBPath)
	}
	if cfg.TemplatePath != "/etc/delivery/payroll_template.xlsx" {
		t.Errorf("expected TemplatePath=/etc/delivery/payroll_template.xlsx, got %s", cfg.TemplatePath)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("expected ShutdownTimeout=5s, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfig_DefaultsApply(t *testing.T) {
	// Given
	dir := t.TempDir()
	path := filepath.Join(dir, "minimal.yaml")
	err := os.WriteFile(path, []byte(`db_path: "local.db"`), 0o644)
	if err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// When
	cfg, err := LoadConfig(path)

	// Then
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Addr != "127.0.0.1:8080" {
		t.Errorf("expected default Addr, got %s", cfg.Addr)
	}
	if cfg.TemplatePath != "" {
		t.Errorf("expected empty TemplatePath, got %s", cfg.TemplatePath)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected default ShutdownTimeout, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadConfig_MissingFile_ReturnsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
