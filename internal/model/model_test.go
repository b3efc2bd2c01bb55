package model

import "testing"

func TestAnalysisRequest_Mode(t *testing.T) {
	withReviews := &AnalysisRequest{Reviews: []Review{{Text: "ok", Rating: 4}}}
	if withReviews.Mode() != ModeReviewTrust {
		t.Errorf("mode = %v, want %v", withReviews.Mode(), ModeReviewTrust)
	}

	withoutReviews := &AnalysisRequest{URL: "https://example.com", PageText: "hello"}
	if withoutReviews.Mode() != ModeSiteRisk {
		t.Errorf("mode = %v, want %v", withoutReviews.Mode(), ModeSiteRisk)
	}
}

func TestAnalysisRequest_Empty(t *testing.T) {
	if !(&AnalysisRequest{URL: "  ", Title: "ignored"}).Empty() {
		t.Error("whitespace URL with no evidence should be empty")
	}
	if (&AnalysisRequest{PageText: "some text"}).Empty() {
		t.Error("page text counts as evidence")
	}
}

func TestNormalizePlatform(t *testing.T) {
	cases := map[string]string{
		"amazon":   PlatformAmazon,
		" AMAZON ": PlatformAmazon,
		"Flipkart": PlatformFlipkart,
		"shopify":  PlatformUnknown,
		"":         PlatformUnknown,
	}

	for in, want := range cases {
		if got := NormalizePlatform(in); got != want {
			t.Errorf("NormalizePlatform(%q) = %q, want %q", in, got, want)
		}
	}
}
