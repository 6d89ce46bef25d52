package model

// DefaultUnit is assigned when an item is created without a unit.
const DefaultUnit = "und"

// Item is one entry on a household's active shopping list. The ID is
// assigned by the client that creates the item and is never reused;
// every other field is replaced wholesale on edit, with Purchased being
// the only field intended to toggle on its own.
type Item struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
	Purchased   bool    `json:"purchased"`
}
