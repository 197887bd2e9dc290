package documents

import (
	"errors"
	"testing"
)

func TestSettleAggregatesPartialFailure(t *testing.T) {
	r := Settle(map[string]error{
		"1": nil,
		"2": errors.New("gone"),
		"3": nil,
	})

	if r.Succeeded != 2 || r.Failed != 1 {
		t.Errorf("Settle = %d/%d, want 2 succeeded, 1 failed", r.Succeeded, r.Failed)
	}
	if len(r.FailedIDs) != 1 || r.FailedIDs[0] != "2" {
		t.Errorf("FailedIDs = %v, want [2]", r.FailedIDs)
	}
	if r.Outcome() != Partial {
		t.Errorf("Outcome() = %v, want Partial", r.Outcome())
	}
}

func TestOutcomeClassification(t *testing.T) {
	tests := []struct {
		name      string
		succeeded int
		failed    int
		want      Outcome
	}{
		{"all succeeded", 3, 0, AllSucceeded},
		{"all failed", 0, 3, AllFailed},
		{"partial", 2, 1, Partial},
		{"empty batch", 0, 0, AllSucceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := BulkResult{Succeeded: tt.succeeded, Failed: tt.failed}
			if got := r.Outcome(); got != tt.want {
				t.Errorf("Outcome() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDownloadPlanExcludesWebSources(t *testing.T) {
	plan, skipped := DownloadPlan([]Document{
		doc("1", "a.pdf", TypePDF, 10, 1),
		doc("2", "example.com", TypeWeb, 0, 2),
		doc("3", "b.txt", TypeText, 5, 3),
	})

	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
	if len(plan) != 2 || plan[0].ID != "1" || plan[1].ID != "3" {
		t.Errorf("plan = %v, want documents 1 and 3 in order", plan)
	}
}
