package model

import "strings"

// Review platforms
const (
	PlatformAmazon   = "Amazon"
	PlatformFlipkart = "Flipkart"
	PlatformUnknown  = "Unknown"
)

// Review is a single scraped product review
type Review struct {
	Text     string  `json:"text"`
	Rating   float64 `json:"rating"` // 0-5 stars
	Date     string  `json:"date,omitempty"`
	Verified bool    `json:"verified"`
	Platform string  `json:"platform"`
}

// Mode selects which evaluation path a request takes
type Mode string

const (
	ModeReviewTrust Mode = "review-trust"
	ModeSiteRisk    Mode = "site-risk"
)

// AnalysisRequest is the single inbound request shape accepted by the engine
type AnalysisRequest struct {
	URL      string   `json:"url"`
	Title    string   `json:"title"`
	Reviews  []Review `json:"reviews"`
	PageText string   `json:"page_text"`
}

// Mode derives the evaluation mode: any reviews means review-trust,
// otherwise site-risk
func (r *AnalysisRequest) Mode() Mode {
	if len(r.Reviews) > 0 {
		return ModeReviewTrust
	}
	return ModeSiteRisk
}

// Empty reports whether the request carries no usable evidence at all
func (r *AnalysisRequest) Empty() bool {
	return strings.TrimSpace(r.URL) == "" &&
		len(r.Reviews) == 0 &&
		strings.TrimSpace(r.PageText) == ""
}

// AnalysisResult is the flat response emitted once per request
type AnalysisResult struct {
	TrustScore     int      `json:"trust_score"`
	SentimentScore float64  `json:"sentiment_score"`
	BotProbability int      `json:"bot_probability"`
	SafetyLabel    string   `json:"safety_label"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Verdict        string   `json:"verdict"`
	PhishingStatus string   `json:"phishing_status"`
	Explanation    []string `json:"explanation"`
}

// NormalizePlatform maps a free-form platform string to a known constant
func NormalizePlatform(platform string) string {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case "amazon":
		return PlatformAmazon
	case "flipkart":
		return PlatformFlipkart
	default:
		return PlatformUnknown
	}
}
