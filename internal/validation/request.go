// Package validation checks recipe requests before any generation is attempted.
// Every failure is a VALIDATION_ERROR AppError carrying the message shown to the user.
package validation

import (
	"fmt"
	"strings"

	"github.com/cravebuster/cravebuster/internal/catalog"
	"github.com/cravebuster/cravebuster/internal/errors"
)

const (
	MsgNoIngredients = "Please add at least one ingredient"
	MsgNoDishName    = "Please enter a dish name to search"
)

// Ingredients requires at least one ingredient and no blank entries.
func Ingredients(ingredients []string) error {
	if len(ingredients) == 0 {
		return errors.NewValidationError(MsgNoIngredients, "NO_INGREDIENTS", "Add an ingredient you have at home.")
	}
	for i, ing := range ingredients {
		if strings.TrimSpace(ing) == "" {
			return errors.NewValidationError(
				fmt.Sprintf("Ingredient %d is empty", i+1),
				"BLANK_INGREDIENT",
				"Remove empty ingredient entries.",
			)
		}
	}
	return nil
}

// Servings requires a serving count inside the form's range.
func Servings(n int) error {
	if n < catalog.MinServings || n > catalog.MaxServings {
		return errors.NewValidationError(
			fmt.Sprintf("Number of servings must be between %d and %d", catalog.MinServings, catalog.MaxServings),
			"INVALID_SERVINGS",
			"",
		)
	}
	return nil
}

// SpiceLevel accepts an empty value or one of the catalog labels.
func SpiceLevel(level string) error {
	if level == "" || catalog.IsSpiceLevel(level) {
		return nil
	}
	return errors.NewValidationError(
		fmt.Sprintf("Unknown spice level %q", level),
		"INVALID_SPICE_LEVEL",
		"Choose Spicy, Medium or Mild.",
	)
}

// DishName requires a non-blank dish name.
func DishName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.NewValidationError(MsgNoDishName, "NO_DISH_NAME", "Pick one of the trending dishes or type your own.")
	}
	return nil
}

// ValidateRecipeRequest checks the fields of an ingredient-based request in form order.
func ValidateRecipeRequest(ingredients []string, servings int, spiceLevel string) error {
	if err := Ingredients(ingredients); err != nil {
		return err
	}
	if err := Servings(servings); err != nil {
		return err
	}
	return SpiceLevel(spiceLevel)
}

// ValidatePopularRequest checks a dish-name search.
func ValidatePopularRequest(dishName, spiceLevel string) error {
	if err := DishName(dishName); err != nil {
		return err
	}
	return SpiceLevel(spiceLevel)
}
