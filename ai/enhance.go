// Package ai wraps the Gemini text-enhancement collaborator. The core treats
// its output as already-valid post content; when the API is unconfigured or
// fails, a deterministic local fallback is used instead.
package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"
)

// Enhancement is the rewritten listing copy for a draft signal.
type Enhancement struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Enhancer rewrites a raw draft into polished listing copy.
type Enhancer interface {
	Enhance(ctx context.Context, rawText, categoryLabel string) (Enhancement, error)
}

// Gemini calls the Gemini API in JSON mode.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Gemini{client: client, model: "gemini-2.5-flash"}, nil
}

func (g *Gemini) Enhance(ctx context.Context, rawText, categoryLabel string) (Enhancement, error) {
	prompt := fmt.Sprintf(`You are an expert copywriter for a social marketplace app called LinkUp.
The user wants to create a listing in the category: %q.
Their raw input is: %q.

Generate a catchy, trustworthy, and clear Title and Description for this post.
Also generate 3 short tags.

Return strictly valid JSON: {"title": "...", "description": "...", "tags": ["...", "...", "..."]}`,
		categoryLabel, rawText)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"},
	)
	if err != nil {
		return Enhancement{}, fmt.Errorf("gemini request failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return Enhancement{}, fmt.Errorf("empty response from gemini")
	}

	var out Enhancement
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return Enhancement{}, fmt.Errorf("malformed gemini response: %w", err)
	}
	return out, nil
}

// Fallback mirrors the prototype's behavior when the AI call cannot be made:
// the raw text becomes the description unchanged.
func Fallback(rawText, categoryLabel string) Enhancement {
	return Enhancement{
		Title:       categoryLabel + " Request",
		Description: rawText,
		Tags:        []string{categoryLabel, "New"},
	}
}
