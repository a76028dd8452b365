package hotpepper

// Shop is one record from the gourmet search API. Name is unique within a
// result set and is the join key for all selection logic downstream.
// The Generated* fields are filled in by the recommendation pipeline.
type Shop struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Genre      string `json:"genre"`
	Budget     string `json:"budget"`
	Address    string `json:"address"`
	Access     string `json:"access"`
	Open       string `json:"open"`
	NonSmoking string `json:"non_smoking"`
	PhotoURL   string `json:"photo_url"`
	DetailURL  string `json:"detail_url"`
	Catch      string `json:"catch"`

	GeneratedIntro string `json:"generated_intro,omitempty"`
	GeneratedItem  string `json:"generated_item,omitempty"`
	GeneratedTags  string `json:"generated_tags,omitempty"`
}

// --- API response structs (internal wire format) ---

type apiResponse struct {
	Results apiResults `json:"results"`
}

type apiResults struct {
	ResultsAvailable int       `json:"results_available"`
	Shop             []apiShop `json:"shop"`
}

type apiShop struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Catch string `json:"catch"`
	Genre struct {
		Name string `json:"name"`
	} `json:"genre"`
	Budget struct {
		Name string `json:"name"`
	} `json:"budget"`
	Address    string `json:"address"`
	Access     string `json:"access"`
	Open       string `json:"open"`
	NonSmoking string `json:"non_smoking"`
	Photo      struct {
		PC struct {
			L string `json:"l"`
		} `json:"pc"`
	} `json:"photo"`
	URLs struct {
		PC string `json:"pc"`
	} `json:"urls"`
}

func (s apiShop) toShop() Shop {
	return Shop{
		ID:         s.ID,
		Name:       s.Name,
		Genre:      s.Genre.Name,
		Budget:     s.Budget.Name,
		Address:    s.Address,
		Access:     s.Access,
		Open:       s.Open,
		NonSmoking: s.NonSmoking,
		PhotoURL:   s.Photo.PC.L,
		DetailURL:  s.URLs.PC,
		Catch:      s.Catch,
	}
}
