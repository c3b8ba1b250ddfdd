package catalog

// Meal is one entry of a day's plan. Macros are in grams.
type Meal struct {
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Carbs    int    `json:"carbs"`
	Protein  int    `json:"protein"`
	Fats     int    `json:"fats"`
}

type DayPlan struct {
	Day       string `json:"day"`
	Breakfast Meal   `json:"breakfast"`
	Lunch     Meal   `json:"lunch"`
	Dinner    Meal   `json:"dinner"`
	Snack     Meal   `json:"snack"`
	Totals    Meal   `json:"totals"`
}

type MacroSplit struct {
	Carbs   int `json:"carbs"`
	Protein int `json:"protein"`
	Fats    int `json:"fats"`
}

type PlanOverview struct {
	DailyCalories int        `json:"dailyCalories"`
	MealsPerDay   int        `json:"mealsPerDay"`
	IncludeSnacks bool       `json:"includeSnacks"`
	Macros        MacroSplit `json:"macros"`
}

type MealPlan struct {
	Overview PlanOverview `json:"overview"`
	Days     []DayPlan    `json:"days"`
}

var sampleOverview = PlanOverview{
	DailyCalories: 1850,
	MealsPerDay:   3,
	IncludeSnacks: true,
	Macros:        MacroSplit{Carbs: 45, Protein: 30, Fats: 25},
}

var sampleWeek = []DayPlan{
	{
		Day:       "Monday",
		Breakfast: Meal{"Greek Yogurt Bowl with Berries", 320, 35, 20, 12},
		Lunch:     Meal{"Grilled Chicken Salad", 450, 25, 40, 18},
		Dinner:    Meal{"Salmon with Quinoa", 520, 45, 35, 22},
		Snack:     Meal{"Apple with Almond Butter", 180, 20, 6, 12},
	},
	{
		Day:       "Tuesday",
		Breakfast: Meal{"Avocado Toast with Eggs", 380, 30, 18, 22},
		Lunch:     Meal{"Turkey Wrap with Veggies", 420, 35, 28, 20},
		Dinner:    Meal{"Beef Stir-fry with Brown Rice", 550, 50, 38, 24},
		Snack:     Meal{"Mixed Nuts", 160, 8, 6, 14},
	},
	{
		Day:       "Wednesday",
		Breakfast: Meal{"Oatmeal with Banana", 290, 45, 12, 8},
		Lunch:     Meal{"Quinoa Buddha Bowl", 480, 55, 20, 18},
		Dinner:    Meal{"Grilled Cod with Sweet Potato", 460, 40, 35, 15},
		Snack:     Meal{"Greek Yogurt", 150, 18, 15, 5},
	},
	{
		Day:       "Thursday",
		Breakfast: Meal{"Smoothie Bowl", 340, 42, 16, 14},
		Lunch:     Meal{"Lentil Soup with Bread", 390, 48, 22, 12},
		Dinner:    Meal{"Chicken Curry with Rice", 580, 52, 42, 26},
		Snack:     Meal{"Protein Bar", 200, 20, 12, 8},
	},
	{
		Day:       "Friday",
		Breakfast: Meal{"Pancakes with Berries", 360, 48, 14, 16},
		Lunch:     Meal{"Mediterranean Bowl", 470, 38, 25, 24},
		Dinner:    Meal{"Pork Tenderloin with Vegetables", 510, 35, 40, 22},
		Snack:     Meal{"Trail Mix", 190, 18, 8, 12},
	},
	{
		Day:       "Saturday",
		Breakfast: Meal{"French Toast", 420, 52, 16, 18},
		Lunch:     Meal{"Fish Tacos", 440, 42, 30, 20},
		Dinner:    Meal{"Lamb Chops with Quinoa", 560, 38, 45, 28},
		Snack:     Meal{"Dark Chocolate", 140, 16, 3, 9},
	},
	{
		Day:       "Sunday",
		Breakfast: Meal{"Eggs Benedict", 480, 28, 24, 32},
		Lunch:     Meal{"Chicken Caesar Salad", 390, 18, 35, 22},
		Dinner:    Meal{"Pasta with Marinara", 520, 65, 20, 18},
		Snack:     Meal{"Fruit Smoothie", 170, 35, 8, 3},
	},
}

// WeeklyMealPlan returns the sample seven-day plan with per-day totals filled in.
// Snacks count towards the totals only when the overview includes them.
func WeeklyMealPlan() MealPlan {
	days := make([]DayPlan, len(sampleWeek))
	for i, d := range sampleWeek {
		d.Totals = dayTotals(d, sampleOverview.IncludeSnacks)
		days[i] = d
	}
	return MealPlan{Overview: sampleOverview, Days: days}
}

func dayTotals(d DayPlan, includeSnacks bool) Meal {
	meals := []Meal{d.Breakfast, d.Lunch, d.Dinner}
	if includeSnacks {
		meals = append(meals, d.Snack)
	}
	total := Meal{Name: "Daily Total"}
	for _, m := range meals {
		total.Calories += m.Calories
		total.Carbs += m.Carbs
		total.Protein += m.Protein
		total.Fats += m.Fats
	}
	return total
}
