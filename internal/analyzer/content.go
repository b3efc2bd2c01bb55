package analyzer

import "strings"

// Keyword families for page-content risk scanning. Matching is
// case-folded substring; each distinct marker counts once.

var scamMarkers = []string{
	"limited stock",
	"hurry",
	"win big",
	"100% off",
	"lowest price ever",
	"guaranteed winner",
	"act now",
	"once in a lifetime",
	"flash sale today only",
}

var paymentMarkers = []string{
	"upi only",
	"bitcoin",
	"crypto only",
	"wire transfer",
	"western union",
	"gift card only",
	"cash only",
}

var policyMarkers = []string{
	"no refund",
	"non-refundable",
	"no returns",
	"all sales final",
	"no warranty",
}

var reassuranceMarkers = []string{
	"return policy",
	"privacy policy",
	"contact us",
	"terms of service",
	"customer support",
	"secure checkout",
}

// Per-marker adjustments and per-family caps
const (
	scamMarkerPenalty    = 5
	scamFamilyCap        = 15
	paymentMarkerPenalty = 8
	paymentFamilyCap     = 16
	policyMarkerPenalty  = 8
	policyFamilyCap      = 16
	reassuranceBonus     = 3
	reassuranceFamilyCap = 9

	contentAdjustmentMin = -30
	contentAdjustmentMax = 10
)

// contentFindings is the outcome of the page-content scan
type contentFindings struct {
	Adjustment int
	Risks      []string
	Assurances []string
}

// contentRisk scans raw page text for the marker families and produces one
// signed, bounded adjustment
func contentRisk(pageText string) contentFindings {
	text := strings.ToLower(pageText)

	findings := contentFindings{}
	findings.Adjustment -= familyTotal(text, scamMarkers, scamMarkerPenalty, scamFamilyCap, &findings.Risks)
	findings.Adjustment -= familyTotal(text, paymentMarkers, paymentMarkerPenalty, paymentFamilyCap, &findings.Risks)
	findings.Adjustment -= familyTotal(text, policyMarkers, policyMarkerPenalty, policyFamilyCap, &findings.Risks)
	findings.Adjustment += familyTotal(text, reassuranceMarkers, reassuranceBonus, reassuranceFamilyCap, &findings.Assurances)

	if findings.Adjustment < contentAdjustmentMin {
		findings.Adjustment = contentAdjustmentMin
	}
	if findings.Adjustment > contentAdjustmentMax {
		findings.Adjustment = contentAdjustmentMax
	}

	return findings
}

// familyTotal sums per-marker adjustments for one family, capped, recording
// each distinct marker found
func familyTotal(text string, markers []string, perMarker, familyCap int, found *[]string) int {
	total := 0
	for _, marker := range markers {
		if strings.Contains(text, marker) {
			*found = append(*found, marker)
			total += perMarker
		}
	}
	if total > familyCap {
		total = familyCap
	}
	return total
}
