package analyzer

import "testing"

func TestContentRisk_RiskMarkers(t *testing.T) {
	findings := contentRisk("Huge deal! NO REFUND on this item. Payment via UPI only.")

	if findings.Adjustment != -16 {
		t.Errorf("adjustment = %d, want -16 (policy -8, payment -8)", findings.Adjustment)
	}
	if len(findings.Risks) != 2 {
		t.Errorf("risks = %v, want 2 markers", findings.Risks)
	}
	if len(findings.Assurances) != 0 {
		t.Errorf("assurances = %v, want none", findings.Assurances)
	}
}

func TestContentRisk_ReassuranceOffsets(t *testing.T) {
	findings := contentRisk("See our return policy and privacy policy, or contact us anytime.")

	if findings.Adjustment != 9 {
		t.Errorf("adjustment = %d, want +9 (three markers, family cap)", findings.Adjustment)
	}
	if len(findings.Assurances) != 3 {
		t.Errorf("assurances = %v, want 3 markers", findings.Assurances)
	}
}

func TestContentRisk_Bounded(t *testing.T) {
	everything := "limited stock hurry win big 100% off lowest price ever guaranteed winner " +
		"act now upi only bitcoin crypto only wire transfer western union cash only " +
		"no refund non-refundable no returns all sales final no warranty"

	findings := contentRisk(everything)
	if findings.Adjustment < contentAdjustmentMin {
		t.Errorf("adjustment = %d, below bound %d", findings.Adjustment, contentAdjustmentMin)
	}

	reassuring := "return policy privacy policy contact us terms of service customer support secure checkout"
	findings = contentRisk(reassuring)
	if findings.Adjustment > contentAdjustmentMax {
		t.Errorf("adjustment = %d, above bound %d", findings.Adjustment, contentAdjustmentMax)
	}
}

func TestContentRisk_EmptyText(t *testing.T) {
	findings := contentRisk("")
	if findings.Adjustment != 0 {
		t.Errorf("adjustment = %d, want 0 for empty text", findings.Adjustment)
	}
}

func TestContentRisk_MarkersCountOnce(t *testing.T) {
	findings := contentRisk("no refund no refund no refund")
	if findings.Adjustment != -8 {
		t.Errorf("adjustment = %d, want -8 (distinct marker counted once)", findings.Adjustment)
	}
}
