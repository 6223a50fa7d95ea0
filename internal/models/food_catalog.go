package models

// CatalogFood carries nutrition values per 100 g.
type CatalogFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func DefaultFoodCatalog() []CatalogFood {
	return []CatalogFood{
		{Name: "Apple", Calories: 52, Protein: 0.3, Carbs: 13.8, Fat: 0.2, Fiber: 2.4, Sugar: 10.4, Sodium: 1},
		{Name: "Banana", Calories: 89, Protein: 1.1, Carbs: 22.8, Fat: 0.3, Fiber: 2.6, Sugar: 12.2, Sodium: 1},
		{Name: "Orange", Calories: 47, Protein: 0.9, Carbs: 11.8, Fat: 0.1, Fiber: 2.4, Sugar: 9.4, Sodium: 0},
		{Name: "Strawberries", Calories: 32, Protein: 0.7, Carbs: 7.7, Fat: 0.3, Fiber: 2.0, Sugar: 4.9, Sodium: 1},
		{Name: "Blueberries", Calories: 57, Protein: 0.7, Carbs: 14.5, Fat: 0.3, Fiber: 2.4, Sugar: 10.0, Sodium: 1},
		{Name: "Broccoli", Calories: 34, Protein: 2.8, Carbs: 7, Fat: 0.4, Fiber: 2.6, Sugar: 1.5, Sodium: 33},
		{Name: "Spinach", Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4, Sodium: 79},
		{Name: "Carrots", Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sugar: 4.7, Sodium: 69},
		{Name: "Sweet Potato", Calories: 86, Protein: 1.6, Carbs: 20.1, Fat: 0.1, Fiber: 3.0, Sugar: 4.2, Sodium: 55},
		{Name: "Avocado", Calories: 160, Protein: 2.0, Carbs: 8.5, Fat: 14.7, Fiber: 6.7, Sugar: 0.7, Sodium: 7},
		{Name: "Chicken Breast", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0, Sodium: 74},
		{Name: "Turkey Breast", Calories: 135, Protein: 30, Carbs: 0, Fat: 1.0, Fiber: 0, Sugar: 0, Sodium: 59},
		{Name: "Salmon", Calories: 208, Protein: 25.4, Carbs: 0, Fat: 12.4, Fiber: 0, Sugar: 0, Sodium: 59},
		{Name: "Tuna", Calories: 144, Protein: 25.4, Carbs: 0, Fat: 4.9, Fiber: 0, Sugar: 0, Sodium: 50},
		{Name: "Eggs", Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1, Sodium: 124},
		{Name: "Greek Yogurt", Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.6, Sodium: 36},
		{Name: "Tofu", Calories: 76, Protein: 8.1, Carbs: 1.9, Fat: 4.8, Fiber: 0.3, Sugar: 0.6, Sodium: 7},
		{Name: "White Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0, Sodium: 1},
		{Name: "Brown Rice", Calories: 112, Protein: 2.3, Carbs: 22, Fat: 0.9, Fiber: 1.8, Sugar: 0, Sodium: 5},
		{Name: "Quinoa", Calories: 120, Protein: 4.4, Carbs: 21.3, Fat: 1.9, Fiber: 2.8, Sugar: 0.9, Sodium: 13},
		{Name: "Oats", Calories: 379, Protein: 13.2, Carbs: 66.3, Fat: 6.9, Fiber: 10.6, Sugar: 0, Sodium: 2},
		{Name: "Whole Wheat Bread", Calories: 247, Protein: 12.9, Carbs: 41.3, Fat: 3.2, Fiber: 6.3, Sugar: 5.0, Sodium: 490},
		{Name: "Pasta", Calories: 157, Protein: 5.8, Carbs: 31.0, Fat: 0.9, Fiber: 1.8, Sugar: 0.6, Sodium: 1},
		{Name: "Potatoes", Calories: 77, Protein: 2.0, Carbs: 17.0, Fat: 0.1, Fiber: 2.2, Sugar: 0.8, Sodium: 6},
		{Name: "Almonds", Calories: 579, Protein: 21.2, Carbs: 21.6, Fat: 49.9, Fiber: 12.5, Sugar: 4.4, Sodium: 1},
		{Name: "Peanut Butter", Calories: 588, Protein: 25, Carbs: 20, Fat: 50, Fiber: 6, Sugar: 9.2, Sodium: 17},
		{Name: "Lentils", Calories: 116, Protein: 9.0, Carbs: 20.1, Fat: 0.4, Fiber: 7.9, Sugar: 1.8, Sodium: 2},
		{Name: "Black Beans", Calories: 132, Protein: 8.9, Carbs: 23.7, Fat: 0.5, Fiber: 8.7, Sugar: 0.3, Sodium: 1},
		{Name: "Milk", Calories: 42, Protein: 3.4, Carbs: 5.0, Fat: 1.0, Fiber: 0, Sugar: 5.0, Sodium: 44},
		{Name: "Cheddar Cheese", Calories: 403, Protein: 25, Carbs: 1.3, Fat: 33, Fiber: 0, Sugar: 0.5, Sodium: 621},
		{Name: "Shrimp", Calories: 99, Protein: 20.4, Carbs: 0.3, Fat: 1.7, Fiber: 0, Sugar: 0, Sodium: 111},
		{Name: "Cod", Calories: 82, Protein: 18.0, Carbs: 0, Fat: 0.7, Fiber: 0, Sugar: 0, Sodium: 54},
	}
}
