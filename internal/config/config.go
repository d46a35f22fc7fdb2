// Package config loads service configuration from the environment.
package config

import (
	"os"
)

// Config carries every external collaborator setting. Values are read once at
// startup; the struct is treated as immutable afterwards.
type Config struct {
	ProjectID      string // GCP project for BigQuery
	Dataset        string // BigQuery dataset holding the transactions table
	ArchiveBucket  string // GCS bucket for the raw message audit trail
	NotionToken    string // ledger mirror credentials, empty disables the mirror
	NotionDatabase string
	GeminiModel    string // AI category classifier model name
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		ProjectID:      getEnv("DUITBOT_PROJECT_ID", "duitbot-dev"),
		Dataset:        getEnv("DUITBOT_DATASET", "duitbot"),
		ArchiveBucket:  getEnv("DUITBOT_ARCHIVE_BUCKET", ""),
		NotionToken:    getEnv("DUITBOT_NOTION_TOKEN", ""),
		NotionDatabase: getEnv("DUITBOT_NOTION_DATABASE", ""),
		GeminiModel:    getEnv("DUITBOT_GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
