package recipe

import (
	"encoding/json"
	"regexp"

	"github.com/cravebuster/cravebuster/internal/errors"
)

// Defaults for fields the model left out.
const (
	DefaultPrepTime   = "15 mins"
	DefaultCookTime   = "30 mins"
	DefaultServes     = "4"
	DefaultCuisine    = "International"
	DefaultDifficulty = "Medium"
	DefaultRating     = "4.5/5"
)

// Greedy: spans from the first '{' to the last '}' in the reply.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the brace-delimited span of raw.
func ExtractJSON(raw string) (string, error) {
	match := jsonObjectPattern.FindString(raw)
	if match == "" {
		return "", errors.NewParseError("No JSON found in response", "NO_JSON", nil)
	}
	return match, nil
}

func decode(raw string) (wireRecipe, error) {
	body, err := ExtractJSON(raw)
	if err != nil {
		return wireRecipe{}, err
	}

	var w wireRecipe
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		return wireRecipe{}, errors.NewParseError("Failed to parse recipe response", "INVALID_JSON", err)
	}

	// ingredients/instructions may be empty arrays but must be present
	if w.Name == "" || w.Ingredients == nil || w.Instructions == nil {
		return wireRecipe{}, errors.NewParseError("Invalid recipe format received", "MISSING_FIELDS", nil)
	}
	return w, nil
}

// ParseGeneratedRecipe parses a model reply for an ingredient-based request.
func ParseGeneratedRecipe(raw string) (GeneratedRecipe, error) {
	w, err := decode(raw)
	if err != nil {
		return GeneratedRecipe{}, err
	}
	return GeneratedRecipe{
		Name:          string(w.Name),
		PrepTime:      orDefault(w.PrepTime, DefaultPrepTime),
		CookTime:      orDefault(w.CookTime, DefaultCookTime),
		Serves:        orDefault(w.Serves, DefaultServes),
		Cuisine:       orDefault(w.Cuisine, DefaultCuisine),
		Ingredients:   w.ingredients(),
		Instructions:  strs(w.Instructions),
		NutritionInfo: w.nutrition(),
	}, nil
}

// ParsePopularRecipe parses a model reply for a dish-name search.
func ParsePopularRecipe(raw string) (PopularRecipe, error) {
	w, err := decode(raw)
	if err != nil {
		return PopularRecipe{}, err
	}
	return PopularRecipe{
		Name:          string(w.Name),
		Description:   string(w.Description),
		PrepTime:      orDefault(w.PrepTime, DefaultPrepTime),
		CookTime:      orDefault(w.CookTime, DefaultCookTime),
		Serves:        orDefault(w.Serves, DefaultServes),
		Cuisine:       orDefault(w.Cuisine, DefaultCuisine),
		Difficulty:    orDefault(w.Difficulty, DefaultDifficulty),
		Rating:        orDefault(w.Rating, DefaultRating),
		Ingredients:   w.ingredients(),
		Instructions:  strs(w.Instructions),
		Tips:          strs(w.Tips),
		NutritionInfo: w.nutrition(),
	}, nil
}

func orDefault(v StringOrNumber, def string) string {
	if v == "" {
		return def
	}
	return string(v)
}
