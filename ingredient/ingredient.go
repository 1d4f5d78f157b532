// Package ingredient keeps a catalog of food ingredients in two ordered
// multi-maps: one ordering ingredients by calories, one counting categories.
// It loads comma separated data files and answers calorie and substitute
// queries.
package ingredient

import (
	"cmp"
	"fmt"
)

// Ingredient is one row of an ingredient data file. Calories are per 100g.
type Ingredient struct {
	name     string
	category string
	calories int
}

func New(category, name string, calories int) *Ingredient {
	return &Ingredient{
		name:     name,
		category: category,
		calories: calories,
	}
}

func (i *Ingredient) Name() string { return i.name }

func (i *Ingredient) Category() string { return i.category }

func (i *Ingredient) Calories() int { return i.calories }

func (i *Ingredient) SetName(name string) { i.name = name }

func (i *Ingredient) SetCategory(category string) { i.category = category }

func (i *Ingredient) SetCalories(calories int) { i.calories = calories }

func (i *Ingredient) String() string {
	return fmt.Sprintf("%s (%s, %d cal)", i.name, i.category, i.calories)
}

// ByCalories orders ingredients by calories only, so every ingredient with
// the same calorie count lands in the same key list.
func ByCalories(a, b *Ingredient) int {
	return cmp.Compare(a.calories, b.calories)
}
