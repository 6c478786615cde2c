package services

import "fartburger/models"

const (
	// AddedIngredientSurcharge is charged per extra unit of an ingredient.
	AddedIngredientSurcharge = 30
	MaxAddedPerIngredient    = 3
)

// CalculatePrice returns the unit price of an item with the given configuration.
// Option groups override the running price in catalog order, so the last matching
// group wins. Removed ingredients are free.
func CalculatePrice(item models.MenuItem, selected map[models.OptionType]string, added map[string]int) int {
	price := item.Price

	for _, group := range item.Options {
		label, ok := selected[group.Type]
		if !ok {
			continue
		}
		if choice, ok := group.Choice(label); ok {
			price = choice.Price
		}
	}

	return price + Surcharge(added)
}

func Surcharge(added map[string]int) int {
	units := 0
	for _, n := range added {
		if n > 0 {
			units += n
		}
	}
	return units * AddedIngredientSurcharge
}
