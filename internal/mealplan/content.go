package mealplan

type guidelineSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

var nutritionGuidelines = []guidelineSection{
	{
		Title: "Eat the Rainbow",
		Items: []string{
			"Dark leafy greens (spinach, kale)",
			"Colorful vegetables and fruits",
			"Berries and citrus fruits",
		},
	},
	{
		Title: "Protein Sources",
		Items: []string{
			"Lean poultry",
			"Fish rich in omega-3",
			"Plant-based proteins",
		},
	},
	{
		Title: "Healthy Fats",
		Items: []string{
			"Avocados",
			"Olive oil",
			"Nuts and seeds",
		},
	},
	{
		Title: "Foods to Limit",
		Items: []string{
			"Processed meats",
			"Excessive red meat",
			"Refined sugars",
			"Alcohol",
		},
	},
}

var preparationTips = []guidelineSection{
	{
		Title: "Cleaning",
		Items: []string{
			"Wash all produce thoroughly",
			"Clean preparation surfaces",
			"Use separate cutting boards",
		},
	},
	{
		Title: "Storage",
		Items: []string{
			"Keep food at safe temperatures",
			"Store leftovers properly",
			"Use airtight containers",
		},
	},
	{
		Title: "Cooking",
		Items: []string{
			"Cook foods thoroughly",
			"Avoid raw or undercooked items",
			"Use food thermometer when needed",
		},
	},
}
