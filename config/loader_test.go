package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func TestLoadAppConfigDefaults(t *testing.T) {
	writeConfig(t, "server:\n  port: 9000\n")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.TfL.BaseURL != "https://api.tfl.gov.uk" {
		t.Errorf("expected default base URL, got %q", cfg.TfL.BaseURL)
	}
	if cfg.TfL.TimeoutMS != 10000 {
		t.Errorf("expected default timeout, got %d", cfg.TfL.TimeoutMS)
	}
	if cfg.Prefs.Path != "golondon.db" {
		t.Errorf("expected default prefs path, got %q", cfg.Prefs.Path)
	}
	if cfg.Cache.StatusTTLSeconds != 60 {
		t.Errorf("expected default cache TTL, got %d", cfg.Cache.StatusTTLSeconds)
	}
}

func TestLoadAppConfigEnvOverrides(t *testing.T) {
	writeConfig(t, "server:\n  port: 9000\ntfl:\n  appID: file-id\n  appKey: file-key\n")
	t.Setenv("TFL_APP_ID", "env-id")
	t.Setenv("TFL_APP_KEY", "env-key")
	t.Setenv("PORT", "9100")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TfL.AppID != "env-id" || cfg.TfL.AppKey != "env-key" {
		t.Errorf("expected env credentials to win, got %q/%q", cfg.TfL.AppID, cfg.TfL.AppKey)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("expected PORT override, got %d", cfg.Server.Port)
	}
}

func TestLoadAppConfigRejectsBadBaseURL(t *testing.T) {
	writeConfig(t, "server:\n  port: 9000\ntfl:\n  baseURL: not-a-url\n")
	if _, err := LoadAppConfig(); err == nil {
		t.Error("expected validation error for malformed base URL")
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
	if _, err := LoadAppConfig(); err == nil {
		t.Error("expected error when no config file exists")
	}
}
