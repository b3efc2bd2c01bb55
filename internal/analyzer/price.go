package analyzer

import (
	"context"

	"github.com/truthlens/truthlens/internal/pricing"
)

// PriceSignal is the outcome of the price-sanity check
type PriceSignal string

const (
	PriceNone    PriceSignal = "None"
	PriceAnomaly PriceSignal = "Anomaly"
	PriceInLine  PriceSignal = "InLine"
)

const (
	priceAnomalyRatio   = 0.5 // local below half the reference price
	priceInLineMaxRatio = 1.6 // above this we make no claim either way
)

// priceCheck carries the signal plus the prices it was derived from
type priceCheck struct {
	Signal    PriceSignal
	Local     float64
	Reference float64
}

// checkPrice extracts a local price from page text and compares it against
// a marketplace reference for the title. Every failure path degrades to
// PriceNone; this check is advisory and must never block scoring.
func (a *Analyzer) checkPrice(ctx context.Context, pageText, title string) priceCheck {
	result := priceCheck{Signal: PriceNone}

	if a.prices == nil {
		return result
	}

	local, ok := pricing.FindFirst(pageText)
	if !ok {
		return result
	}
	result.Local = local

	lookupCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	reference, err := a.prices.ReferencePrice(lookupCtx, title)
	if err != nil || reference <= 0 {
		if err != nil {
			a.log.WithError(err).Warn("reference price lookup failed")
		}
		return result
	}
	result.Reference = reference

	switch ratio := local / reference; {
	case ratio < priceAnomalyRatio:
		result.Signal = PriceAnomaly
	case ratio <= priceInLineMaxRatio:
		result.Signal = PriceInLine
	}

	return result
}
