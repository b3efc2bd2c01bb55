package analyzer

import "testing"

func TestCheckDomain_Whitelisted(t *testing.T) {
	verdict := CheckDomain("https://www.amazon.in/dp/B0XYZ123")

	if verdict.Status != DomainSafe {
		t.Errorf("status = %v, want %v", verdict.Status, DomainSafe)
	}
	if verdict.MatchedDomain != "amazon.in" {
		t.Errorf("matched domain = %q, want %q", verdict.MatchedDomain, "amazon.in")
	}
	if verdict.Distance != 0 {
		t.Errorf("distance = %d, want 0", verdict.Distance)
	}
}

func TestCheckDomain_Typosquat(t *testing.T) {
	verdict := CheckDomain("https://amaz0n.in/deals")

	if verdict.Status != DomainPhishingWarning {
		t.Errorf("status = %v, want %v", verdict.Status, DomainPhishingWarning)
	}
	if verdict.MatchedDomain != "amazon.in" {
		t.Errorf("matched domain = %q, want %q", verdict.MatchedDomain, "amazon.in")
	}
	if verdict.Distance != 1 {
		t.Errorf("distance = %d, want 1", verdict.Distance)
	}
}

func TestCheckDomain_Unrelated(t *testing.T) {
	verdict := CheckDomain("https://randomshop.xyz/product/1")

	if verdict.Status != DomainSuspicious {
		t.Errorf("status = %v, want %v", verdict.Status, DomainSuspicious)
	}
	if verdict.Distance <= typosquatRadius {
		t.Errorf("distance = %d, want > %d", verdict.Distance, typosquatRadius)
	}
	if verdict.MatchedDomain != "" {
		t.Errorf("matched domain = %q, want empty", verdict.MatchedDomain)
	}
}

func TestCheckDomain_SchemelessURL(t *testing.T) {
	verdict := CheckDomain("flipkart.com/watches")

	if verdict.Status != DomainSafe {
		t.Errorf("status = %v, want %v", verdict.Status, DomainSafe)
	}
}

func TestCheckDomain_MalformedURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://[::1"} {
		verdict := CheckDomain(raw)
		if verdict.Status != DomainSuspicious {
			t.Errorf("CheckDomain(%q) status = %v, want %v", raw, verdict.Status, DomainSuspicious)
		}
		if verdict.Distance != DistanceUnknown {
			t.Errorf("CheckDomain(%q) distance = %d, want sentinel", raw, verdict.Distance)
		}
	}
}

func TestCheckDomain_IgnoresPortAndSubdomain(t *testing.T) {
	verdict := CheckDomain("https://www.meesho.com:8443/shop")

	if verdict.Status != DomainSafe {
		t.Errorf("status = %v, want %v", verdict.Status, DomainSafe)
	}
	if verdict.MatchedDomain != "meesho.com" {
		t.Errorf("matched domain = %q, want %q", verdict.MatchedDomain, "meesho.com")
	}
}
