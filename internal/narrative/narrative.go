package narrative

import (
	"context"

	"github.com/truthlens/truthlens/internal/model"
)

// Summary is advisory text only; it never influences numeric scoring.
type Summary struct {
	Pros    []string `json:"pros"`
	Cons    []string `json:"cons"`
	Verdict string   `json:"verdict"`
}

// Generator produces a pros/cons/verdict summary from a review sample.
// Any error from Generate must be answered with Static by the caller.
type Generator interface {
	Generate(ctx context.Context, reviews []model.Review) (*Summary, error)
}

// Static returns the fixed fallback narrative for a mode
func Static(mode model.Mode) *Summary {
	if mode == model.ModeReviewTrust {
		return &Summary{
			Pros:    []string{"Structured reviews were recovered for this product"},
			Cons:    []string{"Automated narrative summary unavailable"},
			Verdict: "AI analysis unavailable (statistical mode only).",
		}
	}
	return &Summary{
		Pros:    []string{},
		Cons:    []string{"No structured reviews were found on this page"},
		Verdict: "No reviews found to analyze; verdict is based on site-level signals only.",
	}
}
