package analyzer

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/truthlens/truthlens/internal/classify"
	"github.com/truthlens/truthlens/internal/model"
	"github.com/truthlens/truthlens/internal/narrative"
	"github.com/truthlens/truthlens/internal/pricing"
)

// Analyzer fuses independent heuristic signals into a trust score, a
// safety label and an explanation trace. It holds no per-request state, so
// concurrent Analyze calls need no locking.
type Analyzer struct {
	log        *logrus.Logger
	classifier classify.Classifier     // primary sentiment model, may be nil
	lexicon    classify.Classifier     // required offline fallback
	narrative  narrative.Generator     // advisory, may be nil
	prices     pricing.ReferenceSource // advisory, may be nil
	timeout    time.Duration
}

// Options configures the optional collaborators of an Analyzer
type Options struct {
	Classifier      classify.Classifier
	Narrative       narrative.Generator
	Prices          pricing.ReferenceSource
	OutboundTimeout time.Duration
}

// New creates an analyzer
func New(log *logrus.Logger, opts Options) *Analyzer {
	timeout := opts.OutboundTimeout
	if timeout <= 0 {
		timeout = 8 * time.Second
	}

	return &Analyzer{
		log:        log,
		classifier: opts.Classifier,
		lexicon:    classify.NewLexicon(),
		narrative:  opts.Narrative,
		prices:     opts.Prices,
		timeout:    timeout,
	}
}

// Analyze runs the full pipeline for one request:
// mode select -> signal collect -> fuse -> label -> explain.
// It never fails; degraded evidence yields a degraded-confidence answer.
func (a *Analyzer) Analyze(ctx context.Context, req *model.AnalysisRequest) *model.AnalysisResult {
	if req == nil || req.Empty() {
		return Neutral()
	}

	verdict := CheckDomain(req.URL)

	if req.Mode() == model.ModeReviewTrust {
		return a.analyzeReviews(ctx, req, verdict)
	}
	return a.analyzeSite(ctx, req, verdict)
}

// Neutral is the maximal-uncertainty site-risk result returned for empty
// or unparseable requests
func Neutral() *model.AnalysisResult {
	return &model.AnalysisResult{
		TrustScore:     baseSuspicious,
		SafetyLabel:    siteLabel(baseSuspicious),
		Pros:           []string{},
		Cons:           []string{"Request carried no usable evidence"},
		Verdict:        "Not enough information to assess this page.",
		PhishingStatus: string(DomainSuspicious),
		Explanation:    []string{"no usable evidence in request; neutral site-risk result"},
	}
}

// analyzeReviews is the review-trust path
func (a *Analyzer) analyzeReviews(ctx context.Context, req *model.AnalysisRequest, verdict DomainVerdict) *model.AnalysisResult {
	reviews := a.sanitizeReviews(req.Reviews)

	stats := summarizeReviews(reviews)
	sentiment := a.aggregateSentiment(ctx, reviews)
	botProb := botProbability(reviews, sentiment.Polarities, stats)

	score := fuseReviewTrust(stats, sentiment.Average, verdict, botProb)
	label := reviewLabel(score)

	summary, generated := a.summarize(ctx, reviews)

	return &model.AnalysisResult{
		TrustScore:     score,
		SentimentScore: round2(sentiment.Average),
		BotProbability: botProb,
		SafetyLabel:    label,
		Pros:           summary.Pros,
		Cons:           summary.Cons,
		Verdict:        summary.Verdict,
		PhishingStatus: string(verdict.Status),
		Explanation:    reviewExplanation(stats, sentiment, botProb, verdict, reviews, generated),
	}
}

// analyzeSite is the site-risk path
func (a *Analyzer) analyzeSite(ctx context.Context, req *model.AnalysisRequest, verdict DomainVerdict) *model.AnalysisResult {
	findings := contentRisk(req.PageText)
	price := a.checkPrice(ctx, req.PageText, req.Title)

	score := fuseSiteRisk(verdict, findings.Adjustment, priceAdjustmentFor(price.Signal))
	label := siteLabel(score)

	// No review batch exists, so the generator contract defines this as
	// fallback; signal-derived pros/cons are appended to the static text.
	summary := narrative.Static(model.ModeSiteRisk)
	pros := append([]string{}, summary.Pros...)
	cons := append([]string{}, summary.Cons...)

	for _, marker := range findings.Assurances {
		pros = append(pros, fmt.Sprintf("Page mentions %q", marker))
	}
	for _, marker := range findings.Risks {
		cons = append(cons, fmt.Sprintf("Page contains risky phrase %q", marker))
	}
	switch price.Signal {
	case PriceAnomaly:
		cons = append(cons, fmt.Sprintf("Listed price ₹%.0f is far below the marketplace reference ₹%.0f", price.Local, price.Reference))
	case PriceInLine:
		pros = append(pros, "Listed price is in line with the marketplace reference")
	}

	return &model.AnalysisResult{
		TrustScore:     score,
		SentimentScore: 0,
		BotProbability: 0,
		SafetyLabel:    label,
		Pros:           pros,
		Cons:           cons,
		Verdict:        summary.Verdict,
		PhishingStatus: string(verdict.Status),
		Explanation:    siteExplanation(verdict, findings, price),
	}
}

// sanitizeReviews clamps out-of-range ratings and normalizes platforms,
// logging each anomaly instead of rejecting the review
func (a *Analyzer) sanitizeReviews(reviews []model.Review) []model.Review {
	sanitized := make([]model.Review, len(reviews))
	for i, r := range reviews {
		if r.Rating < 0 || r.Rating > 5 {
			a.log.WithFields(logrus.Fields{"rating": r.Rating}).Warn("review rating out of range, clamping")
			r.Rating = math.Min(math.Max(r.Rating, 0), 5)
		}
		r.Platform = model.NormalizePlatform(r.Platform)
		sanitized[i] = r
	}
	return sanitized
}

// summarize runs the narrative generator with its mandatory static fallback.
// Returns whether the text came from the generative model.
func (a *Analyzer) summarize(ctx context.Context, reviews []model.Review) (*narrative.Summary, bool) {
	if a.narrative == nil {
		return narrative.Static(model.ModeReviewTrust), false
	}

	summary, err := a.narrative.Generate(ctx, reviews)
	if err != nil {
		a.log.WithError(err).Warn("narrative generation failed, using static fallback")
		return narrative.Static(model.ModeReviewTrust), false
	}
	return summary, true
}

// reviewExplanation assembles the ordered trace for review-trust mode.
// Purely derived from already-computed signals.
func reviewExplanation(stats reviewStats, sentiment sentimentSignal, botProb int, verdict DomainVerdict, reviews []model.Review, generated bool) []string {
	entries := make([]string, 0, 8)

	source := "model"
	if sentiment.Fallback {
		source = "heuristic fallback"
	}
	entries = append(entries, fmt.Sprintf("average sentiment %.2f (%s)", sentiment.Average, source))
	if sentiment.LowConfidence {
		entries = append(entries, "no review text available; sentiment neutral (low confidence)")
	}

	entries = append(entries, fmt.Sprintf("average rating %.1f across %d reviews", stats.meanRating, stats.count))

	if platforms := distinctPlatforms(reviews); len(platforms) > 0 {
		entries = append(entries, "platforms: "+strings.Join(platforms, ", "))
	}

	entries = append(entries, fmt.Sprintf("bot probability %d/100", botProb))
	entries = append(entries, domainExplanation(verdict))

	if generated {
		entries = append(entries, "narrative: generative model")
	} else {
		entries = append(entries, "narrative: static fallback")
	}

	return entries
}

// siteExplanation assembles the ordered trace for site-risk mode
func siteExplanation(verdict DomainVerdict, findings contentFindings, price priceCheck) []string {
	entries := []string{
		"no structured reviews; site-risk mode",
		domainExplanation(verdict),
		fmt.Sprintf("page-content adjustment %+d (%d risky, %d reassuring markers)",
			findings.Adjustment, len(findings.Risks), len(findings.Assurances)),
	}

	switch price.Signal {
	case PriceAnomaly:
		entries = append(entries, fmt.Sprintf("price anomaly: local ₹%.0f under half of reference ₹%.0f", price.Local, price.Reference))
	case PriceInLine:
		entries = append(entries, fmt.Sprintf("local price ₹%.0f consistent with reference ₹%.0f", price.Local, price.Reference))
	default:
		entries = append(entries, "price signal unavailable")
	}

	return entries
}

func domainExplanation(verdict DomainVerdict) string {
	switch verdict.Status {
	case DomainSafe:
		return fmt.Sprintf("domain matches whitelisted marketplace %s", verdict.MatchedDomain)
	case DomainPhishingWarning:
		return fmt.Sprintf("domain within edit distance %d of %s (possible typosquat)", verdict.Distance, verdict.MatchedDomain)
	default:
		if verdict.Distance == DistanceUnknown {
			return "hostname missing or malformed"
		}
		return "domain is not a known marketplace"
	}
}

func distinctPlatforms(reviews []model.Review) []string {
	seen := make(map[string]bool)
	for _, r := range reviews {
		seen[r.Platform] = true
	}

	platforms := make([]string, 0, len(seen))
	for p := range seen {
		platforms = append(platforms, p)
	}
	sort.Strings(platforms)
	return platforms
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
