package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
)

const ramenReply = "Here you go:\n{\"name\":\"Ramen\",\"ingredients\":[{\"name\":\"Noodles\",\"quantity\":\"200\",\"unit\":\"g\"}],\"instructions\":[\"Boil water\",\"Add noodles\"]}"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"prose around", "Sure!\n{\"a\":1}\nEnjoy.", `{"a":1}`},
		{"nested braces", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`},
		{"first to last brace", `{"a":1} and {"b":2}`, `{"a":1} and {"b":2}`},
		{"multiline", "{\n  \"a\": 1\n}", "{\n  \"a\": 1\n}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON_NoBraces(t *testing.T) {
	for _, raw := range []string{"", "no json here", "only } closing { wrong order"} {
		_, err := ExtractJSON(raw)
		require.Error(t, err, raw)
		assert.Equal(t, apperrors.ErrorTypeParse, apperrors.TypeOf(err))
	}
}

func TestParseGeneratedRecipe_Defaults(t *testing.T) {
	got, err := ParseGeneratedRecipe(ramenReply)
	require.NoError(t, err)

	assert.Equal(t, "Ramen", got.Name)
	assert.Equal(t, "15 mins", got.PrepTime)
	assert.Equal(t, "30 mins", got.CookTime)
	assert.Equal(t, "4", got.Serves)
	assert.Equal(t, "International", got.Cuisine)
	assert.Equal(t, []Ingredient{{Name: "Noodles", Quantity: "200", Unit: "g"}}, got.Ingredients)
	assert.Equal(t, []string{"Boil water", "Add noodles"}, got.Instructions)
	assert.Nil(t, got.NutritionInfo)
}

func TestParseGeneratedRecipe_KeepsPresentFields(t *testing.T) {
	raw := `Recipe:
{
  "name": "Tomato Egg Stir-fry",
  "prepTime": "5 mins",
  "cookTime": "10 mins",
  "serves": 2,
  "cuisine": "Chinese",
  "ingredients": [{"name": "eggs", "quantity": 3, "unit": ""}],
  "instructions": ["Beat eggs", "Fry"],
  "nutritionInfo": {"calories": "220 per serving", "protein": "14g per serving", "carbs": "8g per serving", "fat": "15g per serving"},
  "chefNote": "extra keys are ignored"
}`
	got, err := ParseGeneratedRecipe(raw)
	require.NoError(t, err)

	assert.Equal(t, "5 mins", got.PrepTime)
	assert.Equal(t, "10 mins", got.CookTime)
	assert.Equal(t, "2", got.Serves)
	assert.Equal(t, "Chinese", got.Cuisine)
	assert.Equal(t, "3", got.Ingredients[0].Quantity)
	require.NotNil(t, got.NutritionInfo)
	assert.Equal(t, "220 per serving", got.NutritionInfo.Calories)
}

func TestParseGeneratedRecipe_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		code string
	}{
		{"no json", "I cannot help with that.", "NO_JSON"},
		{"malformed", `{"name": "Soup", "ingredients": [}`, "INVALID_JSON"},
		{"missing name", `{"ingredients": [], "instructions": []}`, "MISSING_FIELDS"},
		{"empty name", `{"name": "", "ingredients": [], "instructions": []}`, "MISSING_FIELDS"},
		{"missing ingredients", `{"name": "Soup", "instructions": ["Boil"]}`, "MISSING_FIELDS"},
		{"null instructions", `{"name": "Soup", "ingredients": [], "instructions": null}`, "MISSING_FIELDS"},
		{"wrong types", `{"name": "Soup", "ingredients": "lots", "instructions": []}`, "INVALID_JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGeneratedRecipe(tt.raw)
			require.Error(t, err)
			assert.Equal(t, GeneratedRecipe{}, got, "no partial recipe on failure")

			var appErr *apperrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
			assert.Equal(t, tt.code, appErr.Code())
		})
	}
}

func TestParseGeneratedRecipe_EmptyListsArePresent(t *testing.T) {
	got, err := ParseGeneratedRecipe(`{"name": "Air", "ingredients": [], "instructions": []}`)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)
	assert.Empty(t, got.Instructions)
}

func TestParsePopularRecipe_Defaults(t *testing.T) {
	got, err := ParsePopularRecipe(ramenReply)
	require.NoError(t, err)

	assert.Equal(t, "Ramen", got.Name)
	assert.Equal(t, "15 mins", got.PrepTime)
	assert.Equal(t, "30 mins", got.CookTime)
	assert.Equal(t, "4", got.Serves)
	assert.Equal(t, "International", got.Cuisine)
	assert.Equal(t, "", got.Description)
	assert.Equal(t, "Medium", got.Difficulty)
	assert.Equal(t, "4.5/5", got.Rating)
	require.NotNil(t, got.Tips)
	assert.Empty(t, got.Tips)
}

func TestParsePopularRecipe_AllFields(t *testing.T) {
	raw := `{"name":"Pad Thai","description":"Thai street food","difficulty":"Easy","rating":4.7,
"cuisine":"Thai","ingredients":[{"name":"Rice noodles","quantity":"200","unit":"g"}],
"instructions":["Soak noodles"],"tips":["Use tamarind"]}`
	got, err := ParsePopularRecipe(raw)
	require.NoError(t, err)

	assert.Equal(t, "Thai street food", got.Description)
	assert.Equal(t, "Easy", got.Difficulty)
	assert.Equal(t, "4.7", got.Rating)
	assert.Equal(t, "Thai", got.Cuisine)
	assert.Equal(t, []string{"Use tamarind"}, got.Tips)
}
