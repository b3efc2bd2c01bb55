package analyzer

import (
	"math"
	"net/url"
	"strings"

	"github.com/agext/levenshtein"
)

// DomainStatus classifies how a hostname relates to the marketplace whitelist
type DomainStatus string

const (
	DomainSafe            DomainStatus = "Safe"
	DomainPhishingWarning DomainStatus = "PhishingWarning"
	DomainSuspicious      DomainStatus = "SuspiciousUnverified"
)

// DistanceUnknown is the sentinel distance for malformed or absent hostnames
const DistanceUnknown = math.MaxInt32

// typosquatRadius is the edit-distance acceptance radius for imitation domains
const typosquatRadius = 2

// whitelistDomains are known-good marketplace domains (lower case)
var whitelistDomains = []string{
	"amazon.com",
	"flipkart.com",
	"ebay.com",
	"walmart.com",
	"amazon.in",
	"meesho.com",
}

// DomainVerdict is the result of the lexical distance check
type DomainVerdict struct {
	Status        DomainStatus `json:"status"`
	MatchedDomain string       `json:"matched_whitelist_domain,omitempty"`
	Distance      int          `json:"distance"`
}

// CheckDomain classifies the hostname of rawURL against the whitelist using
// case-insensitive Levenshtein distance. Pure function of its input.
func CheckDomain(rawURL string) DomainVerdict {
	host := hostname(rawURL)
	if host == "" {
		return DomainVerdict{Status: DomainSuspicious, Distance: DistanceUnknown}
	}

	base := baseDomain(host)

	best := DistanceUnknown
	bestMatch := ""
	for _, safe := range whitelistDomains {
		d := levenshtein.Distance(host, safe, nil)
		if bd := levenshtein.Distance(base, safe, nil); bd < d {
			d = bd
		}
		if d < best {
			best = d
			bestMatch = safe
		}
	}

	switch {
	case best == 0:
		return DomainVerdict{Status: DomainSafe, MatchedDomain: bestMatch, Distance: 0}
	case best <= typosquatRadius:
		return DomainVerdict{Status: DomainPhishingWarning, MatchedDomain: bestMatch, Distance: best}
	default:
		return DomainVerdict{Status: DomainSuspicious, Distance: best}
	}
}

// hostname extracts a lower-cased hostname, tolerating scheme-less URLs
func hostname(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		u, err = url.Parse("https://" + rawURL)
		if err != nil {
			return ""
		}
	}

	return strings.ToLower(u.Hostname())
}

// baseDomain reduces "www.amazon.in" to "amazon.in"
func baseDomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return host
	}
	return strings.Join(parts[len(parts)-2:], ".")
}
