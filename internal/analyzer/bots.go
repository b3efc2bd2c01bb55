package analyzer

import (
	"math"
	"strings"

	"github.com/truthlens/truthlens/internal/model"
)

// reviewStats are structural properties of a review set, computed once and
// shared by the bot heuristic and the fusion formula. All fields aggregate
// over the whole set, so they are independent of review order.
type reviewStats struct {
	count          int
	meanRating     float64
	ratingVariance float64 // population variance
	dupExtras      int     // sum of (group size - 1) over duplicate-text groups
	shortCount     int     // reviews under botShortTextChars characters
	avgTextLen     float64
}

// summarizeReviews computes structural statistics for a review set
func summarizeReviews(reviews []model.Review) reviewStats {
	count := len(reviews)
	if count == 0 {
		return reviewStats{}
	}

	groups := make(map[string]int)
	var ratingSum, lenSum float64
	short := 0

	for _, r := range reviews {
		normalized := strings.ToLower(strings.TrimSpace(r.Text))
		if normalized != "" {
			groups[normalized]++
		}
		if len(normalized) < botShortTextChars {
			short++
		}
		ratingSum += r.Rating
		lenSum += float64(len(r.Text))
	}

	extras := 0
	for _, size := range groups {
		if size >= 2 {
			extras += size - 1
		}
	}

	mean := ratingSum / float64(count)
	var varianceSum float64
	for _, r := range reviews {
		d := r.Rating - mean
		varianceSum += d * d
	}

	return reviewStats{
		count:          count,
		meanRating:     mean,
		ratingVariance: varianceSum / float64(count),
		dupExtras:      extras,
		shortCount:     short,
		avgTextLen:     lenSum / float64(count),
	}
}

// botProbability estimates how likely the review set contains synthetic
// entries, in [0, 100]. Deterministic and order-independent.
func botProbability(reviews []model.Review, polarities []float64, stats reviewStats) int {
	if stats.count == 0 {
		return 0
	}

	prob := botDuplicateMax * float64(stats.dupExtras) / float64(stats.count)
	prob += botShortMax * float64(stats.shortCount) / float64(stats.count)

	// Per-review rating/sentiment disagreement
	mismatches := 0
	for i, r := range reviews {
		if strings.TrimSpace(r.Text) == "" || i >= len(polarities) {
			continue
		}
		p := polarities[i]
		if (r.Rating >= 4 && p < -botMismatchPolarity) || (r.Rating <= 2 && p > botMismatchPolarity) {
			mismatches++
		}
	}
	mismatchPenalty := mismatches * botMismatchStep
	if mismatchPenalty > botMismatchCap {
		mismatchPenalty = botMismatchCap
	}
	prob += float64(mismatchPenalty)

	// Suspiciously uniform ratings, only above a minimum sample size
	if stats.count >= botUniformMinSample &&
		stats.ratingVariance < botUniformVarianceMax &&
		stats.meanRating > botUniformMeanMin {
		prob += botUniformPenalty
	}

	v := int(math.Round(prob))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
