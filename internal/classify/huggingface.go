package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const hfBaseURL = "https://api-inference.huggingface.co/models/"

// HuggingFace calls the Hugging Face Inference API for binary sentiment
// classification. The positive-class probability p maps to polarity 2p-1.
type HuggingFace struct {
	model   string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
}

// NewHuggingFace creates a Hugging Face sentiment client
func NewHuggingFace(apiKey, model string, timeout time.Duration, limiter *rate.Limiter) *HuggingFace {
	return &HuggingFace{
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

var _ Classifier = (*HuggingFace)(nil)

// Polarities implements Classifier
func (h *HuggingFace) Polarities(ctx context.Context, texts []string) ([]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if h.limiter != nil {
		if err := h.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	payload, err := json.Marshal(map[string]interface{}{
		"inputs":  texts,
		"options": map[string]bool{"wait_for_model": true},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", hfBaseURL+h.model, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inference api returned status %d: %s", resp.StatusCode, string(body))
	}

	// One label/score pair per class, per input
	var result [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if len(result) != len(texts) {
		return nil, fmt.Errorf("inference api returned %d results for %d inputs", len(result), len(texts))
	}

	polarities := make([]float64, len(result))
	for i, classes := range result {
		best := struct {
			Label string
			Score float64
		}{Score: -1}
		for _, c := range classes {
			if c.Score > best.Score {
				best.Label = c.Label
				best.Score = c.Score
			}
		}
		if strings.Contains(strings.ToUpper(best.Label), "POSITIVE") {
			polarities[i] = 2*best.Score - 1
		} else {
			polarities[i] = 1 - 2*best.Score
		}
	}

	return polarities, nil
}
