// Package catalog holds the fixed option sets and sample data shown by the
// mobile client: form labels, trending dishes, the sample meal plan and the
// sample grocery list.
package catalog

// Spice levels accepted by both request forms.
const (
	SpiceSpicy  = "Spicy"
	SpiceMedium = "Medium"
	SpiceMild   = "Mild"
)

const (
	DefaultSpiceLevel = SpiceMedium
	DefaultServings   = 4
	MinServings       = 1
	MaxServings       = 20
)

var spiceLevels = []string{SpiceSpicy, SpiceMedium, SpiceMild}

var dietaryOptions = []string{"Vegetarian", "Vegan", "Gluten-Free", "Keto", "Jain"}

var cuisineOptions = []string{"Indian", "North Indian", "South Indian", "Bengali", "Gujrati", "Italian", "Mexican"}

var trendingSuggestions = []string{
	"Butter Chicken",
	"Paneer Butter Masala",
	"Biryani",
	"Tikka Masala",
	"Naan Bread",
	"Gulab Jamun",
	"Masala Dosa",
	"Dal Makhani",
	"Chicken Curry",
	"Ramen",
	"Pasta Carbonara",
	"Margherita Pizza",
	"Sushi Roll",
	"Pad Thai",
	"Tacos",
	"Burger",
	"Caesar Salad",
	"Chocolate Cake",
	"Tiramisu",
	"Cheesecake",
}

// FormOptions is the set of labels the request forms offer.
type FormOptions struct {
	SpiceLevels       []string `json:"spiceLevels"`
	DefaultSpiceLevel string   `json:"defaultSpiceLevel"`
	DefaultServings   int      `json:"defaultServings"`
	MinServings       int      `json:"minServings"`
	MaxServings       int      `json:"maxServings"`
	Dietary           []string `json:"dietary"`
	Cuisines          []string `json:"cuisines"`
}

// Options returns a copy of the form label sets.
func Options() FormOptions {
	return FormOptions{
		SpiceLevels:       clone(spiceLevels),
		DefaultSpiceLevel: DefaultSpiceLevel,
		DefaultServings:   DefaultServings,
		MinServings:       MinServings,
		MaxServings:       MaxServings,
		Dietary:           clone(dietaryOptions),
		Cuisines:          clone(cuisineOptions),
	}
}

// IsSpiceLevel reports whether s is one of the accepted spice labels.
func IsSpiceLevel(s string) bool {
	for _, level := range spiceLevels {
		if level == s {
			return true
		}
	}
	return false
}

// TrendingSuggestions returns the dish names offered on the popular-recipe screen.
func TrendingSuggestions() []string {
	return clone(trendingSuggestions)
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
