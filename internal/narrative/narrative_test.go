package narrative

import (
	"encoding/json"
	"testing"

	"github.com/truthlens/truthlens/internal/model"
)

func TestStatic_ReviewTrust(t *testing.T) {
	summary := Static(model.ModeReviewTrust)

	if summary.Verdict == "" {
		t.Error("static review-trust verdict must not be empty")
	}
	if len(summary.Cons) == 0 {
		t.Error("static fallback should note the missing AI summary")
	}
}

func TestStatic_SiteRisk(t *testing.T) {
	summary := Static(model.ModeSiteRisk)

	if summary.Verdict == "" {
		t.Error("static site-risk verdict must not be empty")
	}
	if summary.Pros == nil {
		t.Error("pros must be non-nil so the response serializes as an array")
	}
}

func TestCleanJSON_StripsCodeFences(t *testing.T) {
	raw := "```json\n{\"pros\": [\"a\"], \"cons\": [], \"verdict\": \"ok\"}\n```"

	var summary Summary
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &summary); err != nil {
		t.Fatalf("unmarshal cleaned output: %v", err)
	}
	if summary.Verdict != "ok" {
		t.Errorf("verdict = %q, want %q", summary.Verdict, "ok")
	}
}

func TestCleanJSON_PlainJSONUntouched(t *testing.T) {
	raw := `{"verdict": "fine"}`
	if cleanJSON(raw) != raw {
		t.Errorf("cleanJSON(%q) = %q, want unchanged", raw, cleanJSON(raw))
	}
}
