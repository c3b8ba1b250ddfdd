package recipe

import (
	"github.com/cravebuster/cravebuster/internal/services/ai"
	"github.com/cravebuster/cravebuster/internal/validation"
)

// RecipeRequest asks for a recipe built from the ingredients the user has.
// Empty Dietary and Cuisine mean no preference.
type RecipeRequest struct {
	Ingredients []string `json:"ingredients"`
	Excludes    []string `json:"excludes"`
	SpiceLevel  string   `json:"spiceLevel"`
	Servings    int      `json:"servings"`
	Dietary     string   `json:"dietary,omitempty"`
	Cuisine     string   `json:"cuisine,omitempty"`
}

// Validate checks the request before any provider call.
func (r RecipeRequest) Validate() error {
	return validation.ValidateRecipeRequest(r.Ingredients, r.Servings, r.SpiceLevel)
}

func (r RecipeRequest) prompt() ai.RecipePrompt {
	return ai.RecipePrompt{
		Ingredients: r.Ingredients,
		Excludes:    r.Excludes,
		SpiceLevel:  r.SpiceLevel,
		Servings:    r.Servings,
		Dietary:     r.Dietary,
		Cuisine:     r.Cuisine,
	}
}

// PopularRecipeRequest asks for a well-known recipe by dish name.
type PopularRecipeRequest struct {
	DishName   string `json:"dishName"`
	Cuisine    string `json:"cuisine,omitempty"`
	Dietary    string `json:"dietary,omitempty"`
	SpiceLevel string `json:"spiceLevel,omitempty"`
}

func (r PopularRecipeRequest) Validate() error {
	return validation.ValidatePopularRequest(r.DishName, r.SpiceLevel)
}

func (r PopularRecipeRequest) prompt() ai.PopularPrompt {
	return ai.PopularPrompt{
		DishName:   r.DishName,
		Cuisine:    r.Cuisine,
		Dietary:    r.Dietary,
		SpiceLevel: r.SpiceLevel,
	}
}

type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type NutritionInfo struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

// GeneratedRecipe is the result of an ingredient-based request.
type GeneratedRecipe struct {
	Name          string         `json:"name"`
	PrepTime      string         `json:"prepTime"`
	CookTime      string         `json:"cookTime"`
	Serves        string         `json:"serves"`
	Cuisine       string         `json:"cuisine"`
	Ingredients   []Ingredient   `json:"ingredients"`
	Instructions  []string       `json:"instructions"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}

// PopularRecipe is the result of a dish-name search.
type PopularRecipe struct {
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	PrepTime      string         `json:"prepTime"`
	CookTime      string         `json:"cookTime"`
	Serves        string         `json:"serves"`
	Cuisine       string         `json:"cuisine"`
	Difficulty    string         `json:"difficulty"`
	Rating        string         `json:"rating"`
	Ingredients   []Ingredient   `json:"ingredients"`
	Instructions  []string       `json:"instructions"`
	Tips          []string       `json:"tips"`
	NutritionInfo *NutritionInfo `json:"nutritionInfo,omitempty"`
}
