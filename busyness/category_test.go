package busyness

import "testing"

func TestClassifyCategory(t *testing.T) {
	tests := []struct {
		venueType string
		expected  Category
	}{
		{"Latin Bar & Nightclub", CategoryBar},
		{"Irish Pub", CategoryBar},
		{"NIGHTCLUB", CategoryBar},
		{"Cocktail Lounge", CategoryBar},
		{"Craft Brewery", CategoryBar},
		// "bar" outranks "grill" in mixed labels.
		{"Bar & Grill", CategoryBar},
		{"Sushi Restaurant", CategoryRestaurant},
		{"Steakhouse", CategoryRestaurant},
		{"Pizzeria Napoletana", CategoryRestaurant},
		{"Taqueria", CategoryRestaurant},
		{"Coffee Shop", CategoryCafe},
		{"Cafe de la Paix", CategoryCafe},
		{"French Bakery", CategoryCafe},
		{"", CategoryGeneric},
		{"Laundromat", CategoryGeneric},
		{"Bowling Alley", CategoryGeneric},
	}

	for _, test := range tests {
		t.Run(test.venueType, func(t *testing.T) {
			if got := ClassifyCategory(test.venueType); got != test.expected {
				t.Errorf("ClassifyCategory(%q) = %s, expected %s", test.venueType, got, test.expected)
			}
		})
	}
}
