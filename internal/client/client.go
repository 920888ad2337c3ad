// Package client is the HTTP client for the two backend endpoints.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nutricoach/backend/internal/types"
)

// Client calls the recipe and coach endpoints over plain JSON HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// GenerateRecipes calls POST /api/recipes/generate.
func (c *Client) GenerateRecipes(ctx context.Context, ingredients string, goal types.Goal, diet types.Diet) ([]types.Recipe, error) {
	body := struct {
		Ingredients string     `json:"ingredients"`
		Goal        types.Goal `json:"goal"`
		Diet        types.Diet `json:"diet"`
	}{Ingredients: ingredients, Goal: goal, Diet: diet}

	var out struct {
		Recipes []types.Recipe `json:"recipes"`
	}
	if err := c.post(ctx, "/api/recipes/generate", body, &out); err != nil {
		return nil, err
	}
	return out.Recipes, nil
}

// AskCoach calls POST /api/coach. Recipe may be nil.
func (c *Client) AskCoach(ctx context.Context, message string, goal types.Goal, recipe *types.Recipe) (*types.CoachReply, error) {
	body := struct {
		Message string        `json:"message"`
		Goal    types.Goal    `json:"goal"`
		Recipe  *types.Recipe `json:"recipe"`
	}{Message: message, Goal: goal, Recipe: recipe}

	var out types.CoachReply
	if err := c.post(ctx, "/api/coach", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, joinURL(c.baseURL, path), bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, errorMessage(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage digs a human-readable message out of an error body.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}

// joinURL joins base and path without doubling or dropping slashes.
func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
