package recipe

import "github.com/cravebuster/cravebuster/internal/services/ai"

// Variant describes one kind of recipe request: how to validate it, how to
// prompt for it, how to read the reply and what to return when that fails.
type Variant[Req, Rec any] struct {
	Name         string
	SystemPrompt string
	Validate     func(Req) error
	BuildPrompt  func(Req) string
	Parse        func(raw string) (Rec, error)
	Fallback     func(Req) Rec
}

const (
	VariantIngredients = "ingredients"
	VariantPopular     = "popular"
)

// IngredientVariant generates a recipe from the user's ingredients.
func IngredientVariant() Variant[RecipeRequest, GeneratedRecipe] {
	return Variant[RecipeRequest, GeneratedRecipe]{
		Name:         VariantIngredients,
		SystemPrompt: ai.RecipeSystemPrompt,
		Validate:     RecipeRequest.Validate,
		BuildPrompt: func(r RecipeRequest) string {
			return ai.BuildRecipePrompt(r.prompt())
		},
		Parse:    ParseGeneratedRecipe,
		Fallback: FallbackRecipe,
	}
}

// PopularVariant looks up a well-known recipe by dish name.
func PopularVariant() Variant[PopularRecipeRequest, PopularRecipe] {
	return Variant[PopularRecipeRequest, PopularRecipe]{
		Name:         VariantPopular,
		SystemPrompt: ai.PopularSystemPrompt,
		Validate:     PopularRecipeRequest.Validate,
		BuildPrompt: func(r PopularRecipeRequest) string {
			return ai.BuildPopularPrompt(r.prompt())
		},
		Parse:    ParsePopularRecipe,
		Fallback: FallbackPopularRecipe,
	}
}
