package intent

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		hasSession bool
		want       Intent
	}{
		{"cancel without session", "サブスクを解約したい", false, Cancel},
		{"cancel with session", "解約お願いします", true, Cancel},
		{"cancel beats refine keywords in same text", "もっと安いので解約したい", true, Cancel},
		{"cancel beats next keywords", "違うサービスにするので退会します", true, Cancel},
		{"plan change", "プラン変更したい", false, ChangePlan},
		{"plan change beats refine", "もっと使いたいのでアップグレード", true, ChangePlan},
		{"refine with session", "もっと静かな店がいい", true, Refine},
		{"refine keywords without session fall to new search", "もっと静かな店がいい", false, NewSearch},
		{"next with session", "違う店が見たい", true, NextCandidate},
		{"next without session falls to new search", "違う店が見たい", false, NewSearch},
		{"refine outranks next when both match", "もっと他の静かな店", true, Refine},
		{"plain request", "渋谷で安い焼肉", false, NewSearch},
		{"unrelated request with session replaces it", "明日の天気は？", true, NewSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text, tt.hasSession)
			if got != tt.want {
				t.Errorf("Classify(%q, %v) = %v, want %v", tt.text, tt.hasSession, got, tt.want)
			}
		})
	}
}

func TestClassifySelectPlanAfterRegistration(t *testing.T) {
	defer func() { PlanSelectKeywords = []string{} }()

	if got := Classify("スタンダードプラン", false); got != NewSearch {
		t.Fatalf("before registration: Classify = %v, want %v", got, NewSearch)
	}

	RegisterPlanLabels([]string{"ライトプラン", "スタンダードプラン", "プレミアムプラン"})

	if got := Classify("スタンダードプラン", false); got != SelectPlan {
		t.Errorf("after registration: Classify = %v, want %v", got, SelectPlan)
	}
}
