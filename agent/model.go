// Package agent implements the language model features of the diary: ticker
// resolution and investment insights.
package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

//go:generate mockgen -source=model.go -destination=mock_model_test.go -package=agent_test

// Model is a text completion service.
type Model interface {
	// Generate returns the model's answer to prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini is a Model backed by Google's Gemini API.
type Gemini struct {
	Name   string
	Config *genai.GenerateContentConfig
	client *genai.Client
}

// NewGemini creates a Gemini model authenticated with apiKey.
//
// opts are applied to the client configuration, mostly for tests to point to
// another endpoint.
func NewGemini(ctx context.Context, apiKey, name string, opts ...func(*genai.ClientConfig)) (*Gemini, error) {
	if name == "" {
		name = DefaultModel
	}
	cfg := &genai.ClientConfig{
		APIKey:  strings.TrimSpace(apiKey),
		Backend: genai.BackendGeminiAPI,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("cannot create gemini client: %w", err)
	}
	return &Gemini{Name: name, client: client}, nil
}

// WithBaseURL points the client to another endpoint.
func WithBaseURL(baseURL string) func(*genai.ClientConfig) {
	return func(c *genai.ClientConfig) { c.HTTPOptions.BaseURL = baseURL }
}

// Generate implements Model with a single, non streaming, call.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.Name, genai.Text(prompt), g.Config)
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", fmt.Errorf("no response from model %s", g.Name)
	}
	return resp.Text(), nil
}
