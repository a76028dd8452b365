// Package recommend orchestrates catalog search, model-driven
// candidate selection and per-shop content enrichment across the
// three conversational turns: a new search, a refinement of an
// existing session, and a request for different candidates.
package recommend

import (
	"context"
	"fmt"
	"strings"

	"gourmet-bot-be/pkg/hotpepper"
	"gourmet-bot-be/pkg/llm"
	"gourmet-bot-be/pkg/store"
)

// DefaultCount is how many shops a turn recommends. Tunable via
// config, not a contract.
const DefaultCount = 3

// Catalog is the shop search collaborator.
type Catalog interface {
	Search(ctx context.Context, keyword, genreCode, budgetCode string) ([]hotpepper.Shop, error)
}

// Outcome tells the caller which terminal message (if any) to render.
type Outcome int

const (
	// OutcomeRecommended means Shops carries enriched candidates.
	OutcomeRecommended Outcome = iota
	// OutcomeNoMatch means the catalog search returned nothing.
	OutcomeNoMatch
	// OutcomeNoSelection means the model picked nothing usable from
	// the pool. The session is left untouched.
	OutcomeNoSelection
	// OutcomeExhausted means every candidate was already shown.
	OutcomeExhausted
)

type Result struct {
	Outcome Outcome
	Shops   []hotpepper.Shop
}

type Pipeline struct {
	catalog  Catalog
	provider llm.LLMProvider
	sessions store.Repository
	count    int
}

func NewPipeline(catalog Catalog, provider llm.LLMProvider, sessions store.Repository, count int) *Pipeline {
	if count <= 0 {
		count = DefaultCount
	}
	return &Pipeline{
		catalog:  catalog,
		provider: provider,
		sessions: sessions,
		count:    count,
	}
}

// NewSearch runs a fresh catalog search and replaces any existing
// session for the user. No session is created when the search or the
// selection comes back empty.
func (p *Pipeline) NewSearch(ctx context.Context, userID, text string, filter store.Filter) (Result, error) {
	freeText := strings.TrimSpace(strings.Join(nonEmpty(filter.Location, filter.Keyword), " "))
	if freeText == "" {
		freeText = text
	}

	shops, err := p.catalog.Search(ctx, freeText, hotpepper.GenreCode(filter.Genre), hotpepper.BudgetCode(filter.Budget))
	if err != nil {
		return Result{}, fmt.Errorf("catalog search failed: %w", err)
	}
	if len(shops) == 0 {
		return Result{Outcome: OutcomeNoMatch}, nil
	}

	selected, err := p.selectFromPool(ctx, newSearchPrompt(text, filter.Keyword, p.count), shops)
	if err != nil {
		return Result{}, err
	}
	if len(selected) == 0 {
		return Result{Outcome: OutcomeNoSelection}, nil
	}

	selected = p.enrich(ctx, selected)

	p.sessions.Save(&store.Session{
		UserID:   userID,
		Original: text,
		AllShops: shops,
		Shown:    shopNames(selected),
		Filter:   filter,
	})
	return Result{Outcome: OutcomeRecommended, Shops: selected}, nil
}

// Refine re-selects from the session's existing pool under the merged
// filter. The shown set is replaced, not appended: refinement starts a
// fresh accounting over the same candidates.
func (p *Pipeline) Refine(ctx context.Context, session *store.Session, text string, delta store.Filter) (Result, error) {
	merged := session.Filter.Merge(delta)

	prompt := refinePrompt(merged.Location, session.Filter.Genre, text, p.count)
	selected, err := p.selectFromPool(ctx, prompt, session.AllShops)
	if err != nil {
		return Result{}, err
	}
	if len(selected) == 0 {
		return Result{Outcome: OutcomeNoSelection}, nil
	}

	selected = p.enrich(ctx, selected)

	session.Filter = merged
	session.Original = session.Original + " " + text
	session.Shown = shopNames(selected)
	p.sessions.Save(session)

	return Result{Outcome: OutcomeRecommended, Shops: selected}, nil
}

// NextCandidate picks from the not-yet-shown remainder of the pool.
// The shown set only ever grows on this path.
func (p *Pipeline) NextCandidate(ctx context.Context, session *store.Session) (Result, error) {
	remaining := session.Remaining()
	if len(remaining) == 0 {
		return Result{Outcome: OutcomeExhausted}, nil
	}

	selected, err := p.selectFromPool(ctx, nextCandidatePrompt(session.Original, session.Filter, p.count), remaining)
	if err != nil {
		return Result{}, err
	}
	if len(selected) == 0 {
		return Result{Outcome: OutcomeNoSelection}, nil
	}

	selected = p.enrich(ctx, selected)

	session.Shown = append(session.Shown, shopNames(selected)...)
	p.sessions.Save(session)

	return Result{Outcome: OutcomeRecommended, Shops: selected}, nil
}

func shopNames(shops []hotpepper.Shop) []string {
	names := make([]string, 0, len(shops))
	for _, s := range shops {
		names = append(names, s.Name)
	}
	return names
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
