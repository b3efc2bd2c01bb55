package classify

import (
	"context"
	"strings"
)

// Lexicon is the offline fallback polarity estimator. It scores texts by
// counting sentiment-bearing words, flipping words preceded by a negation.
// Output stays in [-1, 1] so downstream code needs no branching.
type Lexicon struct{}

// NewLexicon creates the fallback estimator
func NewLexicon() *Lexicon {
	return &Lexicon{}
}

var _ Classifier = (*Lexicon)(nil)

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"awesome": true, "love": true, "loved": true, "perfect": true,
	"best": true, "nice": true, "happy": true, "satisfied": true,
	"fast": true, "quality": true, "recommend": true, "recommended": true,
	"worth": true, "comfortable": true, "durable": true, "genuine": true,
	"beautiful": true, "fantastic": true, "superb": true, "value": true,
	"reliable": true, "works": true, "sturdy": true, "smooth": true,
}

var negativeWords = map[string]bool{
	"bad": true, "poor": true, "terrible": true, "awful": true,
	"horrible": true, "hate": true, "hated": true, "worst": true,
	"waste": true, "broken": true, "broke": true, "fake": true,
	"cheap": true, "defective": true, "disappointed": true,
	"disappointing": true, "useless": true, "refund": true,
	"return": true, "returned": true, "damaged": true, "slow": true,
	"scam": true, "fraud": true, "never": true, "stopped": true,
	"flimsy": true, "misleading": true, "regret": true,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "dont": true, "didnt": true,
	"wont": true, "cant": true, "isnt": true, "wasnt": true,
}

// Polarities implements Classifier. It never returns an error.
func (l *Lexicon) Polarities(_ context.Context, texts []string) ([]float64, error) {
	polarities := make([]float64, len(texts))
	for i, text := range texts {
		polarities[i] = l.score(text)
	}
	return polarities, nil
}

func (l *Lexicon) score(text string) float64 {
	words := tokenize(text)

	var pos, neg int
	negated := false
	for _, w := range words {
		if negations[w] && !negativeWords[w] {
			negated = true
			continue
		}

		switch {
		case positiveWords[w]:
			if negated {
				neg++
			} else {
				pos++
			}
		case negativeWords[w]:
			if negated {
				pos++
			} else {
				neg++
			}
		}
		negated = false
	}

	total := pos + neg
	if total == 0 {
		return 0
	}
	return float64(pos-neg) / float64(total)
}

func tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == '\'':
			return -1 // "don't" -> "dont"
		default:
			return ' '
		}
	}, text)

	return strings.Fields(cleaned)
}
