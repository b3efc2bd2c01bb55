package narrative

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"github.com/truthlens/truthlens/internal/model"
)

// maxPromptReviews bounds the review sample sent to the model
const maxPromptReviews = 15

// Gemini generates pros/cons/verdict text with a Gemini model
type Gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	limiter *rate.Limiter
}

// NewGemini creates a Gemini-backed narrative generator
func NewGemini(ctx context.Context, apiKey, modelName string, timeout time.Duration, limiter *rate.Limiter) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Gemini{
		client:  client,
		model:   modelName,
		timeout: timeout,
		limiter: limiter,
	}, nil
}

var _ Generator = (*Gemini)(nil)

// Close releases the underlying client
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Generate implements Generator. An empty review batch is an error by
// contract, so site-risk requests always fall back to Static.
func (g *Gemini) Generate(ctx context.Context, reviews []model.Review) (*Summary, error) {
	if len(reviews) == 0 {
		return nil, fmt.Errorf("no reviews to summarize")
	}

	if g.limiter != nil {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	sample := reviews
	if len(sample) > maxPromptReviews {
		sample = sample[:maxPromptReviews]
	}
	reviewsJSON, err := json.MarshalIndent(sample, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal reviews: %w", err)
	}

	prompt := fmt.Sprintf(`Act as an E-Commerce Fraud Detection Expert. Analyze these reviews:
%s

Your Tasks:
1. Summarize the main pros buyers mention.
2. Summarize the main cons / complaints buyers mention.
3. Give a one-sentence buying advice verdict.

Do NOT estimate bot probability. Focus only on pros, cons, and verdict.

Output strictly VALID JSON with this structure and nothing else:
{
    "pros": ["short point 1", "short point 2"],
    "cons": ["short point 1", "short point 2"],
    "verdict": "<one sentence buying advice>"
}`, string(reviewsJSON))

	gm := g.client.GenerativeModel(g.model)
	gm.ResponseMIMEType = "application/json"

	resp, err := gm.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("empty model response")
	}

	var summary Summary
	if err := json.Unmarshal([]byte(cleanJSON(text)), &summary); err != nil {
		return nil, fmt.Errorf("unmarshal summary: %w", err)
	}
	if summary.Verdict == "" {
		summary.Verdict = "No verdict provided."
	}

	return &summary, nil
}

// responseText concatenates the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var builder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			builder.WriteString(string(text))
		}
	}
	return builder.String()
}

var codeFencePattern = regexp.MustCompile("```[a-zA-Z]*\n?")

// cleanJSON strips markdown code fences that models sometimes wrap
// around JSON output
func cleanJSON(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}
