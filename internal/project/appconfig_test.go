package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/nestkit/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")

	cfg := model.DefaultAppConfig()
	cfg.DefaultPartToPartDistance = 2.5
	cfg.DefaultBestFitScore = model.ScoreOriginDist

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig failed: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig failed: %v", err)
	}

	if loaded.DefaultPartToPartDistance != 2.5 {
		t.Errorf("expected DefaultPartToPartDistance=2.5, got %f", loaded.DefaultPartToPartDistance)
	}
	if loaded.DefaultBestFitScore != model.ScoreOriginDist {
		t.Errorf("expected DefaultBestFitScore=ORIGINDIST, got %s", loaded.DefaultBestFitScore)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "defaults.yaml")

	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}

	defaults := model.DefaultAppConfig()
	if cfg.DefaultBestFitScore != defaults.DefaultBestFitScore {
		t.Errorf("expected default best-fit score %s, got %s", defaults.DefaultBestFitScore, cfg.DefaultBestFitScore)
	}
}

func TestLoadAppConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yaml")

	if err := os.WriteFile(path, []byte("not: valid: yaml: [["), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadAppConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "dir", "defaults.yaml")

	cfg := model.DefaultAppConfig()
	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig should create parent dirs: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("defaults file was not created")
	}
}
