// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the application configuration loaded from environment
// variables. It is constructed once at startup and passed explicitly into
// each component; pipeline logic never reads the environment itself.
type Config struct {
	GitHubToken  string
	Repo         string // "owner/repo"
	PRNumber     int
	OpenAIAPIKey string

	Model            string
	OpenAIBaseURL    string // Empty means the public endpoint.
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64

	Exclude     []string
	Include     []string
	Concurrency int
	DBPath      string
}

// Load reads configuration from environment variables and returns a
// validated Config. Required: PRREVIEW_GITHUB_TOKEN, PRREVIEW_REPO,
// PRREVIEW_PR_NUMBER, PRREVIEW_OPENAI_API_KEY. Everything else has a
// default.
func Load() (*Config, error) {
	cfg := &Config{
		GitHubToken:  os.Getenv("PRREVIEW_GITHUB_TOKEN"),
		Repo:         os.Getenv("PRREVIEW_REPO"),
		OpenAIAPIKey: os.Getenv("PRREVIEW_OPENAI_API_KEY"),

		Model:            "gpt-4o-mini",
		OpenAIBaseURL:    os.Getenv("PRREVIEW_OPENAI_BASE_URL"),
		Temperature:      0.2,
		MaxTokens:        700,
		TopP:             1.0,
		FrequencyPenalty: 0,
		PresencePenalty:  0,

		Concurrency: 1,
		DBPath:      "prreview.db",
	}

	if cfg.GitHubToken == "" {
		return nil, fmt.Errorf("PRREVIEW_GITHUB_TOKEN is required")
	}
	if cfg.Repo == "" || !strings.Contains(cfg.Repo, "/") {
		return nil, fmt.Errorf("PRREVIEW_REPO must be set to owner/repo, got %q", cfg.Repo)
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("PRREVIEW_OPENAI_API_KEY is required")
	}

	prNumber, err := requireInt("PRREVIEW_PR_NUMBER")
	if err != nil {
		return nil, err
	}
	cfg.PRNumber = prNumber

	if v, ok := os.LookupEnv("PRREVIEW_MODEL"); ok && v != "" {
		cfg.Model = v
	}
	if v, ok := os.LookupEnv("PRREVIEW_DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}

	cfg.Exclude = splitPatterns(os.Getenv("PRREVIEW_EXCLUDE"))
	cfg.Include = splitPatterns(os.Getenv("PRREVIEW_INCLUDE"))

	if err := overrideFloat("PRREVIEW_TEMPERATURE", &cfg.Temperature); err != nil {
		return nil, err
	}
	if err := overrideFloat("PRREVIEW_TOP_P", &cfg.TopP); err != nil {
		return nil, err
	}
	if err := overrideFloat("PRREVIEW_FREQUENCY_PENALTY", &cfg.FrequencyPenalty); err != nil {
		return nil, err
	}
	if err := overrideFloat("PRREVIEW_PRESENCE_PENALTY", &cfg.PresencePenalty); err != nil {
		return nil, err
	}
	if err := overrideInt("PRREVIEW_MAX_TOKENS", &cfg.MaxTokens); err != nil {
		return nil, err
	}
	if err := overrideInt("PRREVIEW_CONCURRENCY", &cfg.Concurrency); err != nil {
		return nil, err
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	return cfg, nil
}

// splitPatterns splits a comma-separated glob list, trimming whitespace and
// dropping empty entries. Returns an empty (never nil) slice.
func splitPatterns(v string) []string {
	patterns := []string{}
	for _, p := range strings.Split(v, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func requireInt(key string) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, fmt.Errorf("%s is required", key)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid value %q: %w", key, v, err)
	}
	return n, nil
}

func overrideInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s has invalid value %q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func overrideFloat(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s has invalid value %q: %w", key, v, err)
	}
	*dst = f
	return nil
}
