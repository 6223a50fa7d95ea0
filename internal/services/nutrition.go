package services

import (
	"context"
	"strings"

	"github.com/terraincognita07/fitsense/internal/models"
	"golang.org/x/text/cases"
)

const defaultFoodSearchLimit = 20

// NutritionLookup resolves per-100 g nutrition values by food name.
type NutritionLookup interface {
	Lookup(ctx context.Context, name string) (models.CatalogFood, bool, error)
	Search(ctx context.Context, query string, limit int) ([]models.CatalogFood, error)
}

type CatalogNutrition struct {
	foods []models.CatalogFood
}

func NewCatalogNutrition(foods []models.CatalogFood) *CatalogNutrition {
	if len(foods) == 0 {
		foods = models.DefaultFoodCatalog()
	}
	copied := make([]models.CatalogFood, len(foods))
	copy(copied, foods)
	return &CatalogNutrition{foods: copied}
}

// Lookup prefers an exact case-insensitive name match and otherwise takes the
// first catalog entry containing name.
func (catalog *CatalogNutrition) Lookup(_ context.Context, name string) (models.CatalogFood, bool, error) {
	needle := foldName(name)
	if needle == "" {
		return models.CatalogFood{}, false, nil
	}
	for _, food := range catalog.foods {
		if foldName(food.Name) == needle {
			return food, true, nil
		}
	}
	for _, food := range catalog.foods {
		if strings.Contains(foldName(food.Name), needle) {
			return food, true, nil
		}
	}
	return models.CatalogFood{}, false, nil
}

// Search returns substring matches. With no match it returns the head of the
// catalog so the caller always has suggestions.
func (catalog *CatalogNutrition) Search(_ context.Context, query string, limit int) ([]models.CatalogFood, error) {
	if limit <= 0 {
		limit = defaultFoodSearchLimit
	}
	needle := foldName(query)

	matches := make([]models.CatalogFood, 0, limit)
	for _, food := range catalog.foods {
		if len(matches) == limit {
			break
		}
		if strings.Contains(foldName(food.Name), needle) {
			matches = append(matches, food)
		}
	}
	if len(matches) == 0 {
		matches = append(matches, catalog.foods[:min(limit, len(catalog.foods))]...)
	}
	return matches, nil
}

// foldName trims and case-folds a food name. Casers are stateful, so one is
// built per call.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// MacrosForQuantity scales per-100 g values to grams, one decimal each.
func MacrosForQuantity(food models.CatalogFood, grams float64) models.Macros {
	factor := grams / 100
	return models.Macros{
		Calories: roundTo(food.Calories*factor, 1),
		Protein:  roundTo(food.Protein*factor, 1),
		Carbs:    roundTo(food.Carbs*factor, 1),
		Fat:      roundTo(food.Fat*factor, 1),
		Fiber:    roundTo(food.Fiber*factor, 1),
		Sugar:    roundTo(food.Sugar*factor, 1),
		Sodium:   roundTo(food.Sodium*factor, 1),
	}
}
