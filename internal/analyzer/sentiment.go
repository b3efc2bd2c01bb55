package analyzer

import (
	"context"
	"strings"

	"github.com/truthlens/truthlens/internal/model"
)

// sentimentSignal aggregates per-review polarity into one scalar
type sentimentSignal struct {
	Average       float64
	Polarities    []float64 // aligned with the review slice; 0 for empty texts
	Fallback      bool      // lexicon estimator was used instead of the model
	LowConfidence bool      // no review text was available
}

// aggregateSentiment obtains a polarity per non-empty review text and
// averages them. Model failure degrades to the lexicon fallback, never to
// an error.
func (a *Analyzer) aggregateSentiment(ctx context.Context, reviews []model.Review) sentimentSignal {
	sig := sentimentSignal{Polarities: make([]float64, len(reviews))}

	texts := make([]string, 0, len(reviews))
	indexes := make([]int, 0, len(reviews))
	for i, r := range reviews {
		if strings.TrimSpace(r.Text) != "" {
			texts = append(texts, r.Text)
			indexes = append(indexes, i)
		}
	}

	if len(texts) == 0 {
		sig.LowConfidence = true
		return sig
	}

	polarities, fallback := a.classifyTexts(ctx, texts)
	sig.Fallback = fallback

	var sum float64
	for j, p := range polarities {
		p = clampPolarity(p)
		sig.Polarities[indexes[j]] = p
		sum += p
	}
	sig.Average = sum / float64(len(polarities))

	return sig
}

// classifyTexts tries the primary classifier once, then the lexicon
func (a *Analyzer) classifyTexts(ctx context.Context, texts []string) ([]float64, bool) {
	if a.classifier != nil {
		callCtx, cancel := context.WithTimeout(ctx, a.timeout)
		polarities, err := a.classifier.Polarities(callCtx, texts)
		cancel()

		if err == nil && len(polarities) == len(texts) {
			return polarities, false
		}
		if err != nil {
			a.log.WithError(err).Warn("sentiment model unavailable, using lexicon fallback")
		} else {
			a.log.Warn("sentiment model returned misaligned batch, using lexicon fallback")
		}
	}

	polarities, _ := a.lexicon.Polarities(ctx, texts) // lexicon never errors
	return polarities, true
}

func clampPolarity(p float64) float64 {
	if p < -1 {
		return -1
	}
	if p > 1 {
		return 1
	}
	return p
}
