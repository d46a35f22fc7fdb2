// Package aiclass provides the best-effort AI category classifier. On any
// failure or timeout the keyword-based extractor is authoritative; callers
// must never propagate an error from here to the end user.
package aiclass

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/nazhif/duitbot/internal/domain"
)

// DefaultModelName is the Gemini model used for classification.
const DefaultModelName = "gemini-2.0-flash"

// Result is one classification outcome.
type Result struct {
	Category   domain.Category `json:"category"`
	Confidence float64         `json:"confidence"`
}

// Classifier classifies expense descriptions with Gemini.
type Classifier struct {
	model string
}

// NewClassifier creates a classifier for the given model name; empty selects
// DefaultModelName.
func NewClassifier(model string) *Classifier {
	if model == "" {
		model = DefaultModelName
	}
	return &Classifier{model: model}
}

// Classify asks the model for the best category of a single description. It
// expects STRICT JSON back and tolerates markdown fences the model may add
// despite instructions.
func (c *Classifier) Classify(ctx context.Context, description string) (Result, error) {
	prompt := buildPrompt(description)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return Result{}, fmt.Errorf("Classify: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Result{}, fmt.Errorf("Classify: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return Result{}, fmt.Errorf("Classify: empty response from model")
	}

	clean := cleanModelJSON(rawText)

	var parsed struct {
		Category   string  `json:"category"`
		Confidence float64 `json:"confidence"`
	}
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return Result{}, fmt.Errorf("Classify: unmarshal JSON: %w\nraw response: %s", err, rawText)
	}

	return Result{
		Category:   domain.ParseCategory(parsed.Category),
		Confidence: parsed.Confidence,
	}, nil
}

func buildPrompt(description string) string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return "You are an expense category classifier for Indonesian spending descriptions.\n\n" +
		"Task:\n" +
		"- Classify the description into exactly one of these categories: " + strings.Join(names, ", ") + ".\n" +
		"- Output STRICT JSON only (no comments, no extra text).\n" +
		"- Schema: {\"category\": string, \"confidence\": number between 0 and 1}\n\n" +
		"Return ONLY valid raw JSON.\n" +
		"Do NOT wrap the response in code fences.\n" +
		"Do NOT use ```json or any Markdown.\n\n" +
		"Description: " + description + "\n"
}

// cleanModelJSON strips markdown fences and surrounding junk so the payload
// starts at the first '{' and ends at the last '}'.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
