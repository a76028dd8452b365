// Package intent classifies an inbound message into one of the bot's
// conversation intents. Classification is a prioritized keyword scan:
// deliberately low precision and high recall, with financial/safety
// intents (cancel, plan change) privileged over content intents.
package intent

import "strings"

// Intent is the resolved conversational intent for one message.
type Intent string

const (
	// Cancel asks to terminate the paid subscription.
	Cancel Intent = "CANCEL"
	// SelectPlan picks a concrete plan (usually via quick reply).
	SelectPlan Intent = "SELECT_PLAN"
	// ChangePlan asks to see or switch plans.
	ChangePlan Intent = "CHANGE_PLAN"
	// Refine narrows the current search ("もっと静かな店").
	Refine Intent = "REFINE"
	// NextCandidate asks for a different shop from the same pool.
	NextCandidate Intent = "NEXT"
	// NewSearch starts a fresh search, replacing any session.
	NewSearch Intent = "NEW_SEARCH"
)

type rule struct {
	intent       Intent
	keywords     []string
	needsSession bool
}

// orderedRules is rebuilt per call so lexicons registered after init
// (plan labels) are picked up. First match wins; NewSearch is the
// fallthrough default.
func orderedRules() []rule {
	return []rule{
		{intent: Cancel, keywords: CancelKeywords},
		{intent: SelectPlan, keywords: PlanSelectKeywords},
		{intent: ChangePlan, keywords: PlanChangeKeywords},
		{intent: Refine, keywords: RefineKeywords, needsSession: true},
		{intent: NextCandidate, keywords: NextKeywords, needsSession: true},
	}
}

// Classify resolves the intent for text. hasSession gates the intents
// that only make sense while a recommendation session exists; without
// one, refinement-looking text is just a new search.
func Classify(text string, hasSession bool) Intent {
	for _, r := range orderedRules() {
		if r.needsSession && !hasSession {
			continue
		}
		if containsAny(text, r.keywords) {
			return r.intent
		}
	}
	return NewSearch
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
