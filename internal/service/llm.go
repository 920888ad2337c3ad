package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nutricoach/backend/config"
	"github.com/nutricoach/backend/internal/logger"
)

// AIClient is the single boundary to the external text-completion
// capability. Given prompt text it returns the model's raw output, which
// every caller must treat as untrusted text that may not be valid JSON.
type AIClient interface {
	GenerateJSON(ctx context.Context, system, user string, temperature float64) (string, error)
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a request to the chat completions API
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature"`
}

// chatResponse mirrors the slice of the completions payload we consume.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// OpenAIClient talks to an OpenAI-compatible chat completions endpoint.
// Each call is a single attempt with no retry.
type OpenAIClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
	log    *logger.Logger
}

// NewOpenAIClient creates a client from the startup configuration.
func NewOpenAIClient(cfg *config.Config, log *logger.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: 60 * time.Second},
		log:    log,
	}
}

// GenerateJSON performs one chat completion requesting a JSON-object
// response. Transport and HTTP-level failures return an error; a 200
// response whose payload does not carry a completion yields an empty
// string, never an error.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, system, user string, temperature float64) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    temperature,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return c.extractText(body), nil
}

// extractText pulls the first completion's message content, trimmed. Any
// missing or malformed field yields an empty string.
func (c *OpenAIClient) extractText(body []byte) string {
	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Warn("unexpected completion payload", "error", err, "raw", string(body))
		return ""
	}
	if len(result.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(result.Choices[0].Message.Content)
}

// SafeParseJSON strictly parses text into v. On failure it logs the raw
// text for diagnosis and reports false; it never panics. Callers are
// expected to fall back to canned data when it reports false.
func SafeParseJSON(log *logger.Logger, text string, v interface{}) bool {
	if err := json.Unmarshal([]byte(text), v); err != nil {
		if log != nil {
			log.Warn("JSON parse failed", "error", err, "raw", text)
		}
		return false
	}
	return true
}
