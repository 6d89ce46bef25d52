package model

// Suggestion remembers the unit last used for a product name. Keyed by
// the trimmed, lowercased product name; one row per distinct name.
type Suggestion struct {
	ProductName  string `json:"product_name"`
	LastUsedUnit string `json:"last_used_unit"`
}
