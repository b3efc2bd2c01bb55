package pricing

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// Marketplace fetches a trusted marketplace's search results page and
// parses the first plausible price from its markup.
type Marketplace struct {
	searchURL string
	client    *http.Client
	limiter   *rate.Limiter
}

// NewMarketplace creates a reference source backed by a marketplace search URL
func NewMarketplace(searchURL string, timeout time.Duration, limiter *rate.Limiter) *Marketplace {
	return &Marketplace{
		searchURL: searchURL,
		client:    &http.Client{Timeout: timeout},
		limiter:   limiter,
	}
}

var _ ReferenceSource = (*Marketplace)(nil)

// ReferencePrice implements ReferenceSource
func (m *Marketplace) ReferencePrice(ctx context.Context, title string) (float64, error) {
	if title == "" {
		return 0, fmt.Errorf("empty title")
	}

	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", m.searchURL+"?q="+url.QueryEscape(title), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	req.Header.Set("Accept", "text/html")

	resp, err := m.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("parse markup: %w", err)
	}

	var price float64
	found := false
	doc.Find("span, div").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		// Leaf nodes only, so container text doesn't glue amounts together
		if sel.Children().Length() > 0 {
			return true
		}
		if p, ok := FindFirst(sel.Text()); ok {
			price = p
			found = true
			return false
		}
		return true
	})

	if !found {
		return 0, fmt.Errorf("no price found in search results")
	}
	return price, nil
}
