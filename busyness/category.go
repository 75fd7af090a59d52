package busyness

import "strings"

// Category is the closed set of venue categories the synthetic generator
// knows curves for.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryBar
	CategoryRestaurant
	CategoryCafe
)

func (c Category) String() string {
	switch c {
	case CategoryBar:
		return "bar"
	case CategoryRestaurant:
		return "restaurant"
	case CategoryCafe:
		return "cafe"
	default:
		return "generic"
	}
}

// categoryKeywords is checked in order; the first matching keyword wins.
// Bar keywords come first so that mixed labels like "Bar & Grill" resolve
// to the nightlife curve.
var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryBar, []string{"bar", "pub", "club", "nightclub", "lounge", "brewery", "cantina"}},
	{CategoryRestaurant, []string{"restaurant", "grill", "pizzeria", "bistro", "steakhouse", "sushi", "taqueria", "diner"}},
	{CategoryCafe, []string{"cafe", "café", "coffee", "bakery", "tea house"}},
}

// ClassifyCategory resolves a free-text venue type label to a Category.
// Matching is case-insensitive substring, first match wins; anything
// unrecognized (including the empty string) falls back to CategoryGeneric.
func ClassifyCategory(venueType string) Category {
	label := strings.ToLower(venueType)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(label, kw) {
				return entry.category
			}
		}
	}
	return CategoryGeneric
}
