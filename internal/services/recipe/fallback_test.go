package recipe

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecipe_PreservesIngredients(t *testing.T) {
	requests := []RecipeRequest{
		{Ingredients: []string{"eggs"}, Servings: 1},
		{Ingredients: []string{"eggs", "tomatoes"}, SpiceLevel: "Medium", Servings: 4},
		{Ingredients: []string{"rice", "dal", "ghee", "cumin", "salt"}, Servings: 6, Cuisine: "Gujrati"},
	}

	for _, req := range requests {
		got := FallbackRecipe(req)
		require.Len(t, got.Ingredients, len(req.Ingredients))
		for i, ing := range got.Ingredients {
			assert.Equal(t, req.Ingredients[i], ing.Name)
			assert.Equal(t, "1", ing.Quantity)
			assert.Equal(t, "portion", ing.Unit)
		}
	}
}

func TestFallbackRecipe_Fields(t *testing.T) {
	got := FallbackRecipe(RecipeRequest{Ingredients: []string{"eggs", "tomatoes"}, SpiceLevel: "Medium", Servings: 4})

	assert.Equal(t, "eggs tomatoes Fusion Recipe", got.Name)
	assert.Equal(t, "15 mins", got.PrepTime)
	assert.Equal(t, "25 mins", got.CookTime)
	assert.Equal(t, "4", got.Serves)
	assert.Equal(t, "International", got.Cuisine)
	assert.Len(t, got.Instructions, 4)
	require.NotNil(t, got.NutritionInfo)
	assert.Equal(t, "250 per serving", got.NutritionInfo.Calories)
}

func TestFallbackRecipe_NameUsesFirstThreeAndCuisine(t *testing.T) {
	got := FallbackRecipe(RecipeRequest{Ingredients: []string{"paneer", "peas", "tomato", "cream"}, Servings: 2, Cuisine: "North Indian"})
	assert.Equal(t, "paneer peas tomato North Indian Recipe", got.Name)
	assert.Equal(t, "North Indian", got.Cuisine)
	assert.Equal(t, "2", got.Serves)
}

func TestFallbackRecipe_RequiredFieldsNonEmpty(t *testing.T) {
	got := FallbackRecipe(RecipeRequest{Ingredients: []string{"x"}, Servings: 1})
	for _, v := range []string{got.Name, got.PrepTime, got.CookTime, got.Serves, got.Cuisine} {
		assert.NotEmpty(t, strings.TrimSpace(v))
	}
	for _, step := range got.Instructions {
		assert.NotEmpty(t, step)
	}
}

func TestFallbackRecipe_DoesNotShareState(t *testing.T) {
	a := FallbackRecipe(RecipeRequest{Ingredients: []string{"x"}, Servings: 1})
	a.Instructions[0] = "changed"
	b := FallbackRecipe(RecipeRequest{Ingredients: []string{"x"}, Servings: 1})
	assert.Equal(t, "Heat oil in a pan over medium heat.", b.Instructions[0])
}

func TestFallbackPopularRecipe(t *testing.T) {
	got := FallbackPopularRecipe(PopularRecipeRequest{DishName: "Biryani", Cuisine: "Indian"})

	assert.Equal(t, "Biryani", got.Name)
	assert.Equal(t, "A delicious Biryani recipe that's easy to make at home.", got.Description)
	assert.Equal(t, "Indian", got.Cuisine)
	assert.Equal(t, "Medium", got.Difficulty)
	assert.Equal(t, "4.2/5", got.Rating)
	assert.Equal(t, "4", got.Serves)
	assert.Len(t, got.Ingredients, 5)
	assert.Len(t, got.Instructions, 5)
	assert.Len(t, got.Tips, 3)
	assert.Equal(t, "Salt", got.Ingredients[4].Name)
	assert.Equal(t, "to taste", got.Ingredients[4].Quantity)

	assert.Equal(t, Ingredient{Name: "Main ingredient", Quantity: "500g", Unit: ""}, got.Ingredients[0])

	noCuisine := FallbackPopularRecipe(PopularRecipeRequest{DishName: "Tacos"})
	assert.Equal(t, "International", noCuisine.Cuisine)
}

func TestFallbackPopularRecipe_FillsRequiredFields(t *testing.T) {
	for _, dish := range []string{"", "   ", "Pad Thai", "Crème brûlée"} {
		got := FallbackPopularRecipe(PopularRecipeRequest{DishName: dish})
		assert.NotEmpty(t, got.Name, "dish %q", dish)
		assert.NotEmpty(t, got.Description, "dish %q", dish)
		assert.NotEmpty(t, got.PrepTime, "dish %q", dish)
		assert.NotEmpty(t, got.CookTime, "dish %q", dish)
		assert.NotEmpty(t, got.Serves, "dish %q", dish)
		assert.NotEmpty(t, got.Cuisine, "dish %q", dish)
		assert.NotEmpty(t, got.Ingredients, "dish %q", dish)
		assert.NotEmpty(t, got.Instructions, "dish %q", dish)
	}
	assert.Equal(t, "Recipe", FallbackPopularRecipe(PopularRecipeRequest{DishName: " "}).Name)
}
