package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	defaultPort   = "5000"
	defaultAPIURL = "https://api.openai.com/v1/chat/completions"
	defaultModel  = "gpt-4o-mini"
)

// Config holds all configuration for the application. It is read once at
// startup and passed into constructors; request handlers never read the
// environment themselves.
type Config struct {
	// Server configuration
	ServerPort string
	Env        Environment

	// OpenAI configuration. An empty key is a supported operating mode:
	// both endpoints then serve canned fallback responses only.
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	// CORS configuration
	CORSAllowedOrigins []string
}

// Load creates a new Config instance from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:   getenvDefault("PORT", defaultPort),
		Env:          GetEnvironment(),
		OpenAIAPIURL: getenvDefault("OPENAI_API_URL", defaultAPIURL),
		OpenAIModel:  getenvDefault("OPENAI_MODEL", defaultModel),
	}

	key, err := resolveAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenAIAPIKey = key

	origins := getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// AIEnabled reports whether an AI credential is configured.
func (c *Config) AIEnabled() bool {
	return c.OpenAIAPIKey != ""
}

// resolveAPIKey reads the credential from OPENAI_API_KEY, or from the file
// named by OPENAI_API_KEY_FILE. Neither being set is not an error.
func resolveAPIKey() (string, error) {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key, nil
	}

	keyFile := os.Getenv("OPENAI_API_KEY_FILE")
	if keyFile == "" {
		return "", nil
	}

	data, err := os.ReadFile(keyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func getenvDefault(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
