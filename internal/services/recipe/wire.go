package recipe

import (
	"encoding/json"
	"strconv"
)

// StringOrNumber can unmarshal from JSON string or number
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = StringOrNumber(str)
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = StringOrNumber(strconv.FormatFloat(num, 'f', -1, 64))
	return nil
}

// wireRecipe is the model's reply. It is a superset of both recipe shapes;
// models commonly send numbers where the schema example shows strings.
type wireRecipe struct {
	Name          StringOrNumber   `json:"name"`
	Description   StringOrNumber   `json:"description"`
	PrepTime      StringOrNumber   `json:"prepTime"`
	CookTime      StringOrNumber   `json:"cookTime"`
	Serves        StringOrNumber   `json:"serves"`
	Cuisine       StringOrNumber   `json:"cuisine"`
	Difficulty    StringOrNumber   `json:"difficulty"`
	Rating        StringOrNumber   `json:"rating"`
	Ingredients   []wireIngredient `json:"ingredients"`
	Instructions  []StringOrNumber `json:"instructions"`
	Tips          []StringOrNumber `json:"tips"`
	NutritionInfo *wireNutrition   `json:"nutritionInfo"`
}

type wireIngredient struct {
	Name     StringOrNumber `json:"name"`
	Quantity StringOrNumber `json:"quantity"`
	Unit     StringOrNumber `json:"unit"`
}

type wireNutrition struct {
	Calories StringOrNumber `json:"calories"`
	Protein  StringOrNumber `json:"protein"`
	Carbs    StringOrNumber `json:"carbs"`
	Fat      StringOrNumber `json:"fat"`
}

func (w wireRecipe) ingredients() []Ingredient {
	out := make([]Ingredient, len(w.Ingredients))
	for i, ing := range w.Ingredients {
		out[i] = Ingredient{Name: string(ing.Name), Quantity: string(ing.Quantity), Unit: string(ing.Unit)}
	}
	return out
}

func (w wireRecipe) nutrition() *NutritionInfo {
	if w.NutritionInfo == nil {
		return nil
	}
	n := w.NutritionInfo
	return &NutritionInfo{
		Calories: string(n.Calories),
		Protein:  string(n.Protein),
		Carbs:    string(n.Carbs),
		Fat:      string(n.Fat),
	}
}

func strs(in []StringOrNumber) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = string(s)
	}
	return out
}
