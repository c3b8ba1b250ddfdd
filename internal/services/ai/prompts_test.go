package ai

import (
	"strings"
	"testing"
)

func TestBuildRecipePrompt(t *testing.T) {
	tests := []struct {
		name        string
		prompt      RecipePrompt
		contains    []string
		notContains []string
	}{
		{
			name: "all fields",
			prompt: RecipePrompt{
				Ingredients: []string{"eggs", "tomatoes", "onion"},
				Excludes:    []string{"garlic", "chili"},
				SpiceLevel:  "Spicy",
				Servings:    2,
				Dietary:     "Vegetarian",
				Cuisine:     "North Indian",
			},
			contains: []string{
				"Available Ingredients: eggs, tomatoes, onion\n",
				"Exclude these ingredients: garlic, chili\n",
				"Spice Level: Spicy\n",
				"Number of Servings: 2\n",
				"Dietary Restrictions: Vegetarian\n",
				"Cuisine Preference: North Indian\n",
			},
		},
		{
			name: "optional fields use placeholders",
			prompt: RecipePrompt{
				Ingredients: []string{"eggs", "tomatoes"},
				SpiceLevel:  "Medium",
				Servings:    4,
			},
			contains: []string{
				"Exclude these ingredients: none\n",
				"Dietary Restrictions: none\n",
				"Cuisine Preference: any\n",
			},
			notContains: []string{"Dietary Restrictions: \n", "Cuisine Preference: \n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRecipePrompt(tt.prompt)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("prompt missing %q", want)
				}
			}
			for _, bad := range tt.notContains {
				if strings.Contains(got, bad) {
					t.Errorf("prompt unexpectedly contains %q", bad)
				}
			}
		})
	}
}

func TestBuildRecipePrompt_SchemaExample(t *testing.T) {
	got := BuildRecipePrompt(RecipePrompt{Ingredients: []string{"rice"}, Servings: 1})
	for _, key := range []string{`"name"`, `"prepTime"`, `"cookTime"`, `"serves"`, `"cuisine"`, `"ingredients"`, `"quantity"`, `"unit"`, `"instructions"`, `"nutritionInfo"`, `"calories"`, `"protein"`, `"carbs"`, `"fat"`} {
		if !strings.Contains(got, key) {
			t.Errorf("schema example missing key %s", key)
		}
	}
	if strings.Contains(got, `"tips"`) {
		t.Error("ingredient prompt must not ask for tips")
	}
}

func TestBuildRecipePrompt_ShapeIsConstant(t *testing.T) {
	full := BuildRecipePrompt(RecipePrompt{Ingredients: []string{"a"}, Excludes: []string{"b"}, SpiceLevel: "Mild", Servings: 3, Dietary: "Keto", Cuisine: "Italian"})
	bare := BuildRecipePrompt(RecipePrompt{Ingredients: []string{"a"}, Servings: 3})
	if strings.Count(full, "\n") != strings.Count(bare, "\n") {
		t.Error("prompt line count should not depend on which optional fields are set")
	}
}

func TestBuildPopularPrompt(t *testing.T) {
	got := BuildPopularPrompt(PopularPrompt{DishName: "Ramen"})
	for _, want := range []string{
		`recipe for "Ramen"`,
		"Cuisine: any\n",
		"Dietary Restrictions: none\n",
		"Spice Level: any\n",
		`"description"`,
		`"difficulty"`,
		`"rating"`,
		`"tips"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}

	withFilters := BuildPopularPrompt(PopularPrompt{DishName: "Biryani", Cuisine: "Indian", Dietary: "Jain", SpiceLevel: "Spicy"})
	for _, want := range []string{"Cuisine: Indian\n", "Dietary Restrictions: Jain\n", "Spice Level: Spicy\n"} {
		if !strings.Contains(withFilters, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildPopularPrompt_InterpolatesVerbatim(t *testing.T) {
	got := BuildPopularPrompt(PopularPrompt{DishName: `Mom's "famous" chili\n`})
	want := `recipe for "Mom's "famous" chili\n".`
	if !strings.Contains(got, want) {
		t.Errorf("expected dish name unescaped, got %q", got)
	}
}

func TestSystemPrompts(t *testing.T) {
	if !strings.HasPrefix(RecipeSystemPrompt, "You are a professional chef and recipe creator.") {
		t.Error("unexpected recipe persona")
	}
	if !strings.Contains(PopularSystemPrompt, "Include cultural context and cooking tips.") {
		t.Error("unexpected popular persona")
	}
}
