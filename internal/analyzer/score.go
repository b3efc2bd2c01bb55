package analyzer

import "math"

// All scoring weights, penalty scales and label bands live here so the
// fusion formula stays auditable in one place.

// Review-trust fusion
const (
	weightSentiment = 0.45
	weightRating    = 0.35
	weightVolume    = 0.20

	discrepancyGate      = 0.5 // |normalized rating - sentiment| above this is penalized
	discrepancyScale     = 30.0
	duplicatePenaltyStep = 4
	duplicatePenaltyCap  = 16
	shortAvgLenGate      = 15.0 // average review length in characters
	shortAvgPenalty      = 8
	lowVolumeGate        = 5
	lowVolumePenalty     = 5
)

// Safe-domain calibration floors: a well-reviewed item on a whitelisted
// domain cannot be driven below these scores.
const (
	floorHighReviews   = 50
	floorHighSentiment = 0.4
	floorHighBotMax    = 60
	floorHighScore     = 80

	floorMidReviews   = 20
	floorMidSentiment = 0.3
	floorMidBotMax    = 70
	floorMidScore     = 70
)

// Bot-likelihood heuristic
const (
	botDuplicateMax       = 60.0
	botShortMax           = 30.0
	botShortTextChars     = 30
	botMismatchStep       = 8
	botMismatchCap        = 24
	botMismatchPolarity   = 0.2
	botUniformMinSample   = 8
	botUniformVarianceMax = 0.04
	botUniformMeanMin     = 4.7
	botUniformPenalty     = 10
)

// Site-risk fusion
const (
	baseSafe       = 85
	basePhishing   = 25
	baseSuspicious = 55

	priceAnomalyAdjustment = -15
	priceInLineAdjustment  = 5
)

// Label bands
const (
	reviewAuthenticMin = 80
	reviewModerateMin  = 50

	siteLegitimateMin = 75
	siteUnverifiedMin = 45
)

// fuseReviewTrust computes the trust score for review-trust mode.
// Narrative output never enters this formula.
func fuseReviewTrust(stats reviewStats, avgSentiment float64, verdict DomainVerdict, botProb int) int {
	// Base components, each scaled to [0, 100]
	sentimentComponent := (avgSentiment + 1) / 2 * 100

	ratingComponent := 50.0
	if stats.meanRating > 0 {
		ratingComponent = stats.meanRating / 5.0 * 100
	}

	score := weightSentiment*sentimentComponent +
		weightRating*ratingComponent +
		weightVolume*volumeComponent(stats.count)

	// Stars say one thing, text says another
	normalizedRating := (stats.meanRating - 2.5) / 2.5
	discrepancy := math.Abs(normalizedRating - avgSentiment)
	if discrepancy > discrepancyGate {
		score -= (discrepancy - discrepancyGate) * discrepancyScale
	}

	if stats.dupExtras > 0 {
		score -= math.Min(float64(stats.dupExtras*duplicatePenaltyStep), duplicatePenaltyCap)
	}

	if stats.avgTextLen < shortAvgLenGate {
		score -= shortAvgPenalty
	}

	if stats.count < lowVolumeGate {
		score -= lowVolumePenalty
	}

	final := clampScore(score)

	// Calibration floor on whitelisted domains with strong evidence
	if verdict.Status == DomainSafe {
		switch {
		case stats.count >= floorHighReviews && avgSentiment > floorHighSentiment && botProb <= floorHighBotMax:
			if final < floorHighScore {
				final = floorHighScore
			}
		case stats.count >= floorMidReviews && avgSentiment > floorMidSentiment && botProb <= floorMidBotMax:
			if final < floorMidScore {
				final = floorMidScore
			}
		}
	}

	return final
}

// fuseSiteRisk computes the trust score for site-risk mode
func fuseSiteRisk(verdict DomainVerdict, contentAdjustment, priceAdjustment int) int {
	return clampScore(float64(baseByDomainStatus(verdict.Status) + contentAdjustment + priceAdjustment))
}

func baseByDomainStatus(status DomainStatus) int {
	switch status {
	case DomainSafe:
		return baseSafe
	case DomainPhishingWarning:
		return basePhishing
	default:
		return baseSuspicious
	}
}

// volumeComponent maps review count to a 0-100 confidence step
func volumeComponent(count int) float64 {
	switch {
	case count == 0:
		return 20
	case count < 5:
		return 45
	case count < 20:
		return 70
	case count < 50:
		return 85
	default:
		return 92
	}
}

func priceAdjustmentFor(signal PriceSignal) int {
	switch signal {
	case PriceAnomaly:
		return priceAnomalyAdjustment
	case PriceInLine:
		return priceInLineAdjustment
	default:
		return 0
	}
}

// reviewLabel maps a review-trust score to its safety label
func reviewLabel(score int) string {
	switch {
	case score >= reviewAuthenticMin:
		return "Likely Authentic"
	case score >= reviewModerateMin:
		return "Moderate Risk"
	default:
		return "High Risk / Caution"
	}
}

// siteLabel maps a site-risk score to its safety label
func siteLabel(score int) string {
	switch {
	case score >= siteLegitimateMin:
		return "Likely Legitimate (Site-level)"
	case score >= siteUnverifiedMin:
		return "Unverified Site / Use Caution"
	default:
		return "High Risk / Possible Scam"
	}
}

// clampScore rounds and bounds a score to [0, 100]
func clampScore(score float64) int {
	v := int(math.Round(score))
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
