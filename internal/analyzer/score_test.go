package analyzer

import "testing"

func TestFuseReviewTrust_StrongEvidence(t *testing.T) {
	stats := reviewStats{count: 60, meanRating: 4.8, avgTextLen: 80}
	score := fuseReviewTrust(stats, 0.8, DomainVerdict{Status: DomainSafe}, 10)

	if score < reviewAuthenticMin {
		t.Errorf("score = %d, want >= %d for strong evidence", score, reviewAuthenticMin)
	}
	if reviewLabel(score) != "Likely Authentic" {
		t.Errorf("label = %q, want %q", reviewLabel(score), "Likely Authentic")
	}
}

func TestFuseReviewTrust_SafeDomainFloor(t *testing.T) {
	// Heavy discrepancy penalty drives the raw score down, but 50 reviews
	// with positive sentiment and modest bot probability on a whitelisted
	// domain are floored.
	stats := reviewStats{count: 50, meanRating: 1, avgTextLen: 80}

	floored := fuseReviewTrust(stats, 0.5, DomainVerdict{Status: DomainSafe}, 24)
	if floored != floorHighScore {
		t.Errorf("score = %d, want floor %d", floored, floorHighScore)
	}

	// Same evidence off-whitelist gets no floor
	raw := fuseReviewTrust(stats, 0.5, DomainVerdict{Status: DomainSuspicious}, 24)
	if raw >= floored {
		t.Errorf("unfloored score %d should be below floored score %d", raw, floored)
	}
}

func TestFuseReviewTrust_Bounds(t *testing.T) {
	cases := []struct {
		stats     reviewStats
		sentiment float64
		bot       int
	}{
		{reviewStats{}, -1, 100},
		{reviewStats{count: 3, meanRating: 1, dupExtras: 3, avgTextLen: 5}, -1, 100},
		{reviewStats{count: 200, meanRating: 5, avgTextLen: 300}, 1, 0},
	}

	for _, c := range cases {
		score := fuseReviewTrust(c.stats, c.sentiment, DomainVerdict{Status: DomainSuspicious}, c.bot)
		if score < 0 || score > 100 {
			t.Errorf("score %d out of [0, 100] for %+v", score, c)
		}
	}
}

func TestFuseSiteRisk_Bases(t *testing.T) {
	cases := []struct {
		status DomainStatus
		want   int
	}{
		{DomainSafe, baseSafe},
		{DomainPhishingWarning, basePhishing},
		{DomainSuspicious, baseSuspicious},
	}

	for _, c := range cases {
		score := fuseSiteRisk(DomainVerdict{Status: c.status}, 0, 0)
		if score != c.want {
			t.Errorf("fuseSiteRisk(%v) = %d, want %d", c.status, score, c.want)
		}
	}
}

func TestSiteLabels(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{85, "Likely Legitimate (Site-level)"},
		{75, "Likely Legitimate (Site-level)"},
		{55, "Unverified Site / Use Caution"},
		{45, "Unverified Site / Use Caution"},
		{39, "High Risk / Possible Scam"},
		{0, "High Risk / Possible Scam"},
	}

	for _, c := range cases {
		if got := siteLabel(c.score); got != c.want {
			t.Errorf("siteLabel(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestReviewLabels(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{95, "Likely Authentic"},
		{80, "Likely Authentic"},
		{79, "Moderate Risk"},
		{50, "Moderate Risk"},
		{49, "High Risk / Caution"},
	}

	for _, c := range cases {
		if got := reviewLabel(c.score); got != c.want {
			t.Errorf("reviewLabel(%d) = %q, want %q", c.score, got, c.want)
		}
	}
}

func TestVolumeComponent_Steps(t *testing.T) {
	cases := []struct {
		count int
		want  float64
	}{
		{0, 20}, {1, 45}, {4, 45}, {5, 70}, {19, 70}, {20, 85}, {49, 85}, {50, 92}, {500, 92},
	}

	for _, c := range cases {
		if got := volumeComponent(c.count); got != c.want {
			t.Errorf("volumeComponent(%d) = %v, want %v", c.count, got, c.want)
		}
	}
}
