package catalog

type GroceryItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
	Checked  bool   `json:"checked"`
}

type GrocerySection struct {
	Title   string        `json:"title"`
	Items   []GroceryItem `json:"items"`
	Checked int           `json:"checked"`
	Total   int           `json:"total"`
}

type GroceryList struct {
	Sections []GrocerySection `json:"sections"`
	Checked  int              `json:"checked"`
	Total    int              `json:"total"`
}

var sampleGroceries = []GrocerySection{
	{Title: "Proteins", Items: []GroceryItem{
		{Name: "Greek Yogurt", Quantity: "2 containers", Category: "Dairy"},
		{Name: "Chicken Breast", Quantity: "2 lbs", Category: "Meat"},
		{Name: "Salmon Fillets", Quantity: "4 pieces", Category: "Seafood"},
		{Name: "Eggs", Quantity: "1 dozen", Category: "Dairy"},
		{Name: "Turkey Slices", Quantity: "1 lb", Category: "Meat"},
		{Name: "Ground Beef", Quantity: "1 lb", Category: "Meat"},
		{Name: "Cod Fillets", Quantity: "4 pieces", Category: "Seafood"},
		{Name: "Lentils", Quantity: "1 bag", Category: "Legumes"},
		{Name: "Pork Tenderloin", Quantity: "1.5 lbs", Category: "Meat"},
		{Name: "Lamb Chops", Quantity: "8 pieces", Category: "Meat"},
	}},
	{Title: "Vegetables & Fruits", Items: []GroceryItem{
		{Name: "Mixed Berries", Quantity: "2 cups", Category: "Fruits"},
		{Name: "Avocados", Quantity: "4 pieces", Category: "Vegetables"},
		{Name: "Mixed Salad Greens", Quantity: "2 bags", Category: "Vegetables"},
		{Name: "Bell Peppers", Quantity: "6 pieces", Category: "Vegetables"},
		{Name: "Sweet Potatoes", Quantity: "4 pieces", Category: "Vegetables"},
		{Name: "Bananas", Quantity: "6 pieces", Category: "Fruits"},
		{Name: "Apples", Quantity: "4 pieces", Category: "Fruits"},
		{Name: "Broccoli", Quantity: "2 heads", Category: "Vegetables"},
		{Name: "Carrots", Quantity: "1 bag", Category: "Vegetables"},
		{Name: "Spinach", Quantity: "1 bag", Category: "Vegetables"},
	}},
	{Title: "Grains & Carbs", Items: []GroceryItem{
		{Name: "Quinoa", Quantity: "2 cups", Category: "Grains"},
		{Name: "Brown Rice", Quantity: "2 cups", Category: "Grains"},
		{Name: "Whole Grain Bread", Quantity: "1 loaf", Category: "Bakery"},
		{Name: "Oats", Quantity: "1 container", Category: "Grains"},
		{Name: "Whole Wheat Tortillas", Quantity: "1 pack", Category: "Bakery"},
		{Name: "Pasta", Quantity: "1 box", Category: "Grains"},
	}},
	{Title: "Pantry Items", Items: []GroceryItem{
		{Name: "Almond Butter", Quantity: "1 jar", Category: "Nuts/Seeds"},
		{Name: "Mixed Nuts", Quantity: "1 bag", Category: "Nuts/Seeds"},
		{Name: "Olive Oil", Quantity: "1 bottle", Category: "Oils"},
		{Name: "Marinara Sauce", Quantity: "1 jar", Category: "Sauces"},
		{Name: "Coconut Milk", Quantity: "2 cans", Category: "Canned Goods"},
		{Name: "Protein Bars", Quantity: "1 box", Category: "Snacks"},
		{Name: "Trail Mix", Quantity: "1 bag", Category: "Snacks"},
		{Name: "Dark Chocolate", Quantity: "1 bar", Category: "Snacks"},
	}},
}

// Groceries returns the sample grocery list with the named items marked as
// checked and the per-section and overall counts filled in.
func Groceries(checked map[string]bool) GroceryList {
	var list GroceryList
	for _, s := range sampleGroceries {
		section := GrocerySection{Title: s.Title, Items: make([]GroceryItem, len(s.Items))}
		for i, item := range s.Items {
			item.Checked = checked[item.Name]
			if item.Checked {
				section.Checked++
			}
			section.Items[i] = item
		}
		section.Total = len(section.Items)
		list.Checked += section.Checked
		list.Total += section.Total
		list.Sections = append(list.Sections, section)
	}
	return list
}
