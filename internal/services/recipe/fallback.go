package recipe

import (
	"fmt"
	"strconv"
	"strings"
)

var fallbackSteps = []string{
	"Heat oil in a pan over medium heat.",
	"Add your ingredients and cook until tender.",
	"Season with spices according to your spice level preference.",
	"Serve hot and enjoy!",
}

var popularFallbackIngredients = []Ingredient{
	{Name: "Main ingredient", Quantity: "500g", Unit: ""},
	{Name: "Onions", Quantity: "2", Unit: "medium"},
	{Name: "Garlic", Quantity: "4", Unit: "cloves"},
	{Name: "Oil", Quantity: "2", Unit: "tbsp"},
	{Name: "Salt", Quantity: "to taste", Unit: ""},
}

var popularFallbackSteps = []string{
	"Prepare your ingredients.",
	"Heat oil in a pan over medium heat.",
	"Add your main ingredients and cook until done.",
	"Season with salt and spices.",
	"Serve hot and enjoy!",
}

var popularFallbackTips = []string{
	"Make sure to use fresh ingredients for best results.",
	"Adjust seasoning according to your taste preferences.",
	"You can customize this recipe with additional ingredients.",
}

// FallbackRecipe builds a generic recipe from the request alone. It performs
// no I/O and keeps every requested ingredient, in order.
func FallbackRecipe(req RecipeRequest) GeneratedRecipe {
	base := req.Ingredients
	if len(base) > 3 {
		base = base[:3]
	}

	style := req.Cuisine
	if style == "" {
		style = "Fusion"
	}
	cuisine := req.Cuisine
	if cuisine == "" {
		cuisine = DefaultCuisine
	}

	ingredients := make([]Ingredient, len(req.Ingredients))
	for i, name := range req.Ingredients {
		ingredients[i] = Ingredient{Name: name, Quantity: "1", Unit: "portion"}
	}

	return GeneratedRecipe{
		Name:         strings.TrimSpace(fmt.Sprintf("%s %s Recipe", strings.Join(base, " "), style)),
		PrepTime:     "15 mins",
		CookTime:     "25 mins",
		Serves:       strconv.Itoa(req.Servings),
		Cuisine:      cuisine,
		Ingredients:  ingredients,
		Instructions: append([]string(nil), fallbackSteps...),
		NutritionInfo: &NutritionInfo{
			Calories: "250 per serving",
			Protein:  "12g per serving",
			Carbs:    "30g per serving",
			Fat:      "8g per serving",
		},
	}
}

// FallbackPopularRecipe builds a generic template recipe for a dish name.
func FallbackPopularRecipe(req PopularRecipeRequest) PopularRecipe {
	dish := strings.TrimSpace(req.DishName)
	if dish == "" {
		dish = "Recipe"
	}
	cuisine := req.Cuisine
	if cuisine == "" {
		cuisine = DefaultCuisine
	}

	return PopularRecipe{
		Name:         dish,
		Description:  fmt.Sprintf("A delicious %s recipe that's easy to make at home.", dish),
		PrepTime:     "15 mins",
		CookTime:     "25 mins",
		Serves:       "4",
		Cuisine:      cuisine,
		Difficulty:   DefaultDifficulty,
		Rating:       "4.2/5",
		Ingredients:  append([]Ingredient(nil), popularFallbackIngredients...),
		Instructions: append([]string(nil), popularFallbackSteps...),
		Tips:         append([]string(nil), popularFallbackTips...),
		NutritionInfo: &NutritionInfo{
			Calories: "300 per serving",
			Protein:  "15g per serving",
			Carbs:    "25g per serving",
			Fat:      "12g per serving",
		},
	}
}
