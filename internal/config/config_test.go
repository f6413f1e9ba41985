package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_NoFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "" {
		t.Fatalf("expected empty format, got %q", cfg.Format)
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	content := `format: json
timeout: 5s
offline: true
exclude_dirs:
  - fixtures
  - samples
`
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected format json, got %q", cfg.Format)
	}
	if !cfg.Offline {
		t.Fatal("expected offline true")
	}
	if len(cfg.ExcludeDirs) != 2 {
		t.Fatalf("expected 2 exclude_dirs, got %d", len(cfg.ExcludeDirs))
	}
}

func TestLoad_YMLExtension(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yml"), []byte("format: sarif"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "sarif" {
		t.Fatalf("expected format sarif, got %q", cfg.Format)
	}
}

func TestLoad_YAMLTakesPrecedence(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yaml"), []byte("format: first"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yml"), []byte("format: second"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "first" {
		t.Fatalf("expected .yaml to take precedence, got %q", cfg.Format)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yaml"), []byte(":::invalid"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".dataspectre.yaml"), []byte("format: text\noffline: false"), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	t.Setenv("DATASPECTRE_FORMAT", "json")
	t.Setenv("DATASPECTRE_OFFLINE", "true")
	t.Setenv("DATASPECTRE_EXCLUDE_DIRS", "fixtures,samples")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Format != "json" {
		t.Fatalf("expected env format override, got %q", cfg.Format)
	}
	if !cfg.Offline {
		t.Fatal("expected env offline override")
	}
	if len(cfg.ExcludeDirs) != 2 || cfg.ExcludeDirs[0] != "fixtures" {
		t.Fatalf("expected env exclude_dirs override, got %v", cfg.ExcludeDirs)
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := Config{Timeout: "5s"}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Fatalf("expected 5s, got %v", cfg.TimeoutDuration())
	}

	cfg.Timeout = ""
	if cfg.TimeoutDuration() != 0 {
		t.Fatalf("expected 0 for empty, got %v", cfg.TimeoutDuration())
	}

	cfg.Timeout = "invalid"
	if cfg.TimeoutDuration() != 0 {
		t.Fatalf("expected 0 for invalid, got %v", cfg.TimeoutDuration())
	}
}
