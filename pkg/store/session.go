package store

import "gourmet-bot-be/pkg/hotpepper"

// Filter is the structured view of what the user asked for. Fields are
// accumulated across a refinement chain: a new extraction only overwrites
// a field when it is non-empty (see Merge).
type Filter struct {
	Location string `json:"location"`
	Genre    string `json:"genre"`
	Budget   string `json:"budget"`
	Keyword  string `json:"keyword"`
	Wishes   string `json:"wishes"` // こだわり条件 free-form constraints
}

// Merge returns f overlaid with the non-empty fields of delta.
func (f Filter) Merge(delta Filter) Filter {
	out := f
	if delta.Location != "" {
		out.Location = delta.Location
	}
	if delta.Genre != "" {
		out.Genre = delta.Genre
	}
	if delta.Budget != "" {
		out.Budget = delta.Budget
	}
	if delta.Keyword != "" {
		out.Keyword = delta.Keyword
	}
	if delta.Wishes != "" {
		out.Wishes = delta.Wishes
	}
	return out
}

// Session is the per-user conversational state. It lives in memory (or
// redis) only: losing it on restart simply means the next message starts
// a fresh search.
type Session struct {
	UserID   string `json:"user_id"`
	Original string `json:"original"` // accumulated literal request text

	// Full candidate pool from the first catalog search. Refinement and
	// "show another" turns re-select from this pool without a new
	// catalog call.
	AllShops []hotpepper.Shop `json:"all_shops"`

	// Names already presented to the user. Invariant: every entry is the
	// name of a shop in AllShops.
	Shown []string `json:"shown"`

	Filter Filter `json:"filter"`
}

// HasShown reports whether a shop name was already presented.
func (s *Session) HasShown(name string) bool {
	for _, n := range s.Shown {
		if n == name {
			return true
		}
	}
	return false
}

// Remaining returns the candidates not yet shown, in pool order.
func (s *Session) Remaining() []hotpepper.Shop {
	var out []hotpepper.Shop
	for _, shop := range s.AllShops {
		if !s.HasShown(shop.Name) {
			out = append(out, shop)
		}
	}
	return out
}

// Repository is the session store contract. Implementations: go-cache
// (default, process local) and redis (survives restarts).
type Repository interface {
	Save(session *Session)
	Get(userID string) (*Session, bool)
	Delete(userID string)
}
