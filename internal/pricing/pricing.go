package pricing

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// ReferenceSource looks up a trusted reference price for a product title.
// Lookups are advisory: callers must treat any error as "no signal".
type ReferenceSource interface {
	ReferencePrice(ctx context.Context, title string) (float64, error)
}

// Rupee amounts: "₹1,299", "Rs. 999", "INR 2,999.50"
var pricePattern = regexp.MustCompile(`(?i)(?:₹|\bRs\.?\s?|\bINR\s?)\s*([0-9][0-9,]*(?:\.[0-9]{1,2})?)`)

// FindFirst extracts the first currency amount from free-form text.
// Returns 0, false when no parsable amount is present.
func FindFirst(text string) (float64, bool) {
	match := pricePattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	return parseAmount(match[1])
}

func parseAmount(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	amount, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || amount <= 0 {
		return 0, false
	}
	return amount, true
}
