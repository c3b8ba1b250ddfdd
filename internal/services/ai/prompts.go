package ai

import (
	"fmt"
	"strings"
)

// System personas sent as the first chat message.
const (
	RecipeSystemPrompt = "You are a professional chef and recipe creator. Generate detailed, practical recipes that are easy to follow and delicious. Always provide accurate measurements and clear instructions."

	PopularSystemPrompt = "You are a professional chef and recipe expert. You have extensive knowledge of popular recipes from around the world. Provide detailed, authentic recipes that are widely recognized and loved. Include cultural context and cooking tips."
)

// Placeholders for optional fields the user left empty.
const (
	placeholderNone = "none"
	placeholderAny  = "any"
)

const recipeOutputFormatSection = `Please provide the recipe in the following JSON format:
{
  "name": "Recipe Name",
  "prepTime": "X mins",
  "cookTime": "X mins",
  "serves": "X-X",
  "cuisine": "Cuisine Type",
  "ingredients": [
    {
      "name": "Ingredient Name",
      "quantity": "X",
      "unit": "unit of measurement"
    }
  ],
  "instructions": [
    "Step 1 instruction",
    "Step 2 instruction",
    "Step 3 instruction"
  ],
  "nutritionInfo": {
    "calories": "X per serving",
    "protein": "Xg per serving",
    "carbs": "Xg per serving",
    "fat": "Xg per serving"
  }
}`

const recipeClosingSection = `Make sure the recipe is practical, uses the available ingredients, respects dietary restrictions, and matches the spice level and cuisine preferences. The instructions should be clear and easy to follow. Return only valid JSON.`

const popularOutputFormatSection = `Please provide the recipe in the following JSON format:
{
  "name": "Recipe Name",
  "description": "Brief description of the dish and its cultural significance",
  "prepTime": "X mins",
  "cookTime": "X mins",
  "serves": "X-X people",
  "cuisine": "Cuisine Type",
  "difficulty": "Easy/Medium/Hard",
  "rating": "X.X/5 stars",
  "ingredients": [
    {
      "name": "Ingredient Name",
      "quantity": "X",
      "unit": "unit of measurement"
    }
  ],
  "instructions": [
    "Step 1 instruction",
    "Step 2 instruction",
    "Step 3 instruction"
  ],
  "tips": [
    "Cooking tip 1",
    "Cooking tip 2",
    "Cooking tip 3"
  ],
  "nutritionInfo": {
    "calories": "X per serving",
    "protein": "Xg per serving",
    "carbs": "Xg per serving",
    "fat": "Xg per serving"
  }
}`

const popularClosingSection = `Make sure this is a genuine, popular recipe that people would recognize and want to make. Include authentic ingredients and techniques. Return only valid JSON.`

// RecipePrompt carries the fields of an ingredient-based request.
type RecipePrompt struct {
	Ingredients []string
	Excludes    []string
	SpiceLevel  string
	Servings    int
	Dietary     string
	Cuisine     string
}

// PopularPrompt carries the fields of a dish-name request.
type PopularPrompt struct {
	DishName   string
	Cuisine    string
	Dietary    string
	SpiceLevel string
}

// BuildRecipePrompt renders the user message for ingredient-based generation.
// Every field appears on its own line; empty optional fields render as a placeholder.
func BuildRecipePrompt(p RecipePrompt) string {
	var sb strings.Builder
	sb.WriteString("Create a detailed recipe with the following requirements:\n\n")
	fmt.Fprintf(&sb, "Available Ingredients: %s\n", strings.Join(p.Ingredients, ", "))
	fmt.Fprintf(&sb, "Exclude these ingredients: %s\n", orPlaceholder(strings.Join(p.Excludes, ", "), placeholderNone))
	fmt.Fprintf(&sb, "Spice Level: %s\n", orPlaceholder(p.SpiceLevel, placeholderAny))
	fmt.Fprintf(&sb, "Number of Servings: %d\n", p.Servings)
	fmt.Fprintf(&sb, "Dietary Restrictions: %s\n", orPlaceholder(p.Dietary, placeholderNone))
	fmt.Fprintf(&sb, "Cuisine Preference: %s\n\n", orPlaceholder(p.Cuisine, placeholderAny))
	sb.WriteString(recipeOutputFormatSection)
	sb.WriteString("\n\n")
	sb.WriteString(recipeClosingSection)
	return sb.String()
}

// BuildPopularPrompt renders the user message for a popular-recipe search.
func BuildPopularPrompt(p PopularPrompt) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Find a popular and well-known recipe for \"%s\".\n\n", p.DishName)
	fmt.Fprintf(&sb, "Cuisine: %s\n", orPlaceholder(p.Cuisine, placeholderAny))
	fmt.Fprintf(&sb, "Dietary Restrictions: %s\n", orPlaceholder(p.Dietary, placeholderNone))
	fmt.Fprintf(&sb, "Spice Level: %s\n\n", orPlaceholder(p.SpiceLevel, placeholderAny))
	sb.WriteString("This should be a widely recognized, authentic recipe that many people know and love. ")
	sb.WriteString(popularOutputFormatSection)
	sb.WriteString("\n\n")
	sb.WriteString(popularClosingSection)
	return sb.String()
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}
