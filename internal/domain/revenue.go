package domain

// Revenue is the precomputed revenue of one calendar month, in major units.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}
