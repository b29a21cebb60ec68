package config

import (
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		value      string
		defaultVal string
		expected   string
	}{
		{
			name:       "returns set value",
			key:        "QUIZZY_TEST_STR",
			value:      "custom",
			defaultVal: "fallback",
			expected:   "custom",
		},
		{
			name:       "returns default when unset",
			key:        "QUIZZY_TEST_STR_UNSET",
			value:      "",
			defaultVal: "fallback",
			expected:   "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getEnvOrDefault(tt.key, tt.defaultVal); got != tt.expected {
				t.Errorf("getEnvOrDefault(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestGetEnvAsIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		value      string
		defaultVal int
		expected   int
	}{
		{
			name:       "parses integer",
			key:        "QUIZZY_TEST_INT",
			value:      "42",
			defaultVal: 5,
			expected:   42,
		},
		{
			name:       "returns default when unset",
			key:        "QUIZZY_TEST_INT_UNSET",
			value:      "",
			defaultVal: 5,
			expected:   5,
		},
		{
			name:       "returns default on parse failure",
			key:        "QUIZZY_TEST_INT_BAD",
			value:      "not-a-number",
			defaultVal: 5,
			expected:   5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Setenv(tt.key, tt.value)
			}
			if got := getEnvAsIntOrDefault(tt.key, tt.defaultVal); got != tt.expected {
				t.Errorf("getEnvAsIntOrDefault(%q) = %d, want %d", tt.key, got, tt.expected)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DataFile != "./data/quizzy.json" {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.StoreTimeoutSeconds != 5 {
		t.Errorf("expected default store timeout 5, got %d", cfg.StoreTimeoutSeconds)
	}
	if cfg.EmailWorkers != 2 {
		t.Errorf("expected 2 email workers, got %d", cfg.EmailWorkers)
	}
}
