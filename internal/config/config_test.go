package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DUITBOT_PROJECT_ID", "")
	t.Setenv("DUITBOT_DATASET", "")
	t.Setenv("DUITBOT_GEMINI_MODEL", "")

	cfg := Load()
	if cfg.ProjectID != "duitbot-dev" {
		t.Errorf("ProjectID = %q, want duitbot-dev", cfg.ProjectID)
	}
	if cfg.Dataset != "duitbot" {
		t.Errorf("Dataset = %q, want duitbot", cfg.Dataset)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Errorf("GeminiModel = %q, want gemini-2.0-flash", cfg.GeminiModel)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DUITBOT_PROJECT_ID", "prod-project")
	t.Setenv("DUITBOT_ARCHIVE_BUCKET", "duitbot-messages")

	cfg := Load()
	if cfg.ProjectID != "prod-project" {
		t.Errorf("ProjectID = %q, want prod-project", cfg.ProjectID)
	}
	if cfg.ArchiveBucket != "duitbot-messages" {
		t.Errorf("ArchiveBucket = %q, want duitbot-messages", cfg.ArchiveBucket)
	}
}
