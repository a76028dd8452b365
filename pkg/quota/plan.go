package quota

// Unlimited marks a plan with no monthly ceiling.
const Unlimited = -1

// FreeCeiling is how many recommendations an unsubscribed user gets.
const FreeCeiling = 1

type Plan struct {
	ID      string
	Label   string
	Price   int64
	Ceiling int
}

// Catalog is the static plan table. Read-only after construction.
type Catalog struct {
	plans []Plan
}

func NewCatalog(plans []Plan) *Catalog {
	return &Catalog{plans: plans}
}

// DefaultCatalog returns the built-in plan table used when no
// overrides are configured.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Plan{
		{ID: "light", Label: "ライトプラン", Price: 500, Ceiling: 10},
		{ID: "standard", Label: "スタンダードプラン", Price: 980, Ceiling: 50},
		{ID: "premium", Label: "プレミアムプラン", Price: 1980, Ceiling: Unlimited},
	})
}

func (c *Catalog) Plans() []Plan {
	out := make([]Plan, len(c.plans))
	copy(out, c.plans)
	return out
}

func (c *Catalog) ByID(id string) (Plan, bool) {
	for _, p := range c.plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func (c *Catalog) ByLabel(label string) (Plan, bool) {
	for _, p := range c.plans {
		if p.Label == label {
			return p, true
		}
	}
	return Plan{}, false
}

// Labels returns every plan label, in catalog order.
func (c *Catalog) Labels() []string {
	labels := make([]string, 0, len(c.plans))
	for _, p := range c.plans {
		labels = append(labels, p.Label)
	}
	return labels
}

// Ceiling resolves the monthly usage ceiling for an account. An
// unsubscribed user is held to the free ceiling. A subscribed user
// with an unknown plan reference is also held to the free ceiling
// rather than granted unlimited use.
func (c *Catalog) Ceiling(subscribed bool, planRef string) int {
	if !subscribed {
		return FreeCeiling
	}
	if p, ok := c.ByID(planRef); ok {
		return p.Ceiling
	}
	return FreeCeiling
}
