package models

import "time"

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealSnacks    = "snacks"
	MealDinner    = "dinner"
)

func MealTypes() []string {
	return []string{MealBreakfast, MealLunch, MealSnacks, MealDinner}
}

type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Protein:  m.Protein + other.Protein,
		Carbs:    m.Carbs + other.Carbs,
		Fat:      m.Fat + other.Fat,
		Fiber:    m.Fiber + other.Fiber,
		Sugar:    m.Sugar + other.Sugar,
		Sodium:   m.Sodium + other.Sodium,
	}
}

type FoodEntry struct {
	FoodName string    `json:"food_name"`
	Quantity float64   `json:"quantity"`
	MealType string    `json:"meal_type"`
	Macros   Macros    `json:"macros"`
	LoggedAt time.Time `json:"logged_at"`
}

// DailyFoodLog holds one user's meals for a calendar day. TotalMacros always
// equals the sum of every entry across all meals.
type DailyFoodLog struct {
	ID          uint                   `gorm:"primaryKey" json:"id"`
	UserID      uint                   `gorm:"not null;uniqueIndex:uidx_food_user_date" json:"user_id"`
	Date        time.Time              `gorm:"type:date;not null;uniqueIndex:uidx_food_user_date" json:"date"`
	Meals       map[string][]FoodEntry `gorm:"serializer:json" json:"meals"`
	TotalMacros Macros                 `gorm:"embedded;embeddedPrefix:total_" json:"total_macros"`
	WaterML     *float64               `json:"water_ml"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func (entry *DailyFoodLog) RecomputeTotals() {
	total := Macros{}
	for _, items := range entry.Meals {
		for _, item := range items {
			total = total.Add(item.Macros)
		}
	}
	entry.TotalMacros = total
}
