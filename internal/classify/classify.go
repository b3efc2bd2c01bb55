package classify

import "context"

// Classifier estimates text polarity in [-1, 1] for a batch of texts.
// Implementations must return one polarity per input text, in order.
type Classifier interface {
	Polarities(ctx context.Context, texts []string) ([]float64, error)
}
