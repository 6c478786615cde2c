package services

import (
	"testing"

	"fartburger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_IdenticalConfigurationsMerge(t *testing.T) {
	cart := NewCart()
	item := sizedItem()

	first := cart.Add(item, models.NewCustomization(item))
	second := cart.Add(item, models.NewCustomization(item))

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, first.LineID, second.LineID)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, 400, second.LineTotal)
	assert.Equal(t, 400, cart.Total())
	assert.Equal(t, 2, cart.ItemCount())
}

func TestCart_MergeKeepsOriginalUnitPrice(t *testing.T) {
	cart := NewCart()
	item := models.MenuItem{ID: "plain", Price: 100}
	cart.Add(item, models.NewCustomization(item))

	item.Price = 150
	line := cart.Add(item, models.NewCustomization(item))

	assert.Equal(t, 100, line.UnitPrice)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 200, cart.Total())
}

func TestCart_RemovalOrderDoesNotSplitLines(t *testing.T) {
	cart := NewCart()
	item := sizedItem()

	a := models.NewCustomization(item)
	a.RemovedIngredients = []string{"Сыр", "Соус"}
	b := models.NewCustomization(item)
	b.RemovedIngredients = []string{"Соус", "Сыр"}

	cart.Add(item, a)
	cart.Add(item, b)

	require.Len(t, cart.Lines(), 1)
	assert.Equal(t, 2, cart.Lines()[0].Quantity)
}

func TestCart_DifferentConfigurationsStaySeparate(t *testing.T) {
	cart := NewCart()
	item := sizedItem()

	plain := models.NewCustomization(item)
	large := models.NewCustomization(item)
	large.SelectedOptions[models.OptionSize] = "L"
	extra := models.NewCustomization(item)
	extra.AddedIngredients["Сыр"] = 1

	cart.Add(item, plain)
	cart.Add(item, large)
	cart.Add(item, extra)

	assert.Len(t, cart.Lines(), 3)
	assert.Equal(t, 200+200+230, cart.Total())
}

func TestCart_LineIsSnapshot(t *testing.T) {
	cart := NewCart()
	item := sizedItem()
	custom := models.NewCustomization(item)

	cart.Add(item, custom)
	custom.AddedIngredients["Сыр"] = 3
	custom.SelectedOptions[models.OptionSize] = "L"

	line := cart.Lines()[0]
	assert.Empty(t, line.AddedIngredients)
	assert.Equal(t, "S", line.SelectedOptions[models.OptionSize])
}

func TestCart_SummaryDescribesCustomization(t *testing.T) {
	cart := NewCart()
	item := sizedItem()
	custom := models.NewCustomization(item)
	custom.RemovedIngredients = []string{"Соус"}
	custom.AddedIngredients["Сыр"] = 2

	line := cart.Add(item, custom)

	assert.Equal(t, []string{
		"S, 1шт",
		"Без: Соус",
		"Добавлено: Сыр x2",
	}, line.Summary)
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	item := sizedItem()
	cart.Add(item, models.NewCustomization(item))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 0, cart.Total())
	assert.Equal(t, models.CartState{Lines: []models.CartLine{}}, cart.State())
}

func TestCart_TotalIgnoresInsertionOrder(t *testing.T) {
	big := models.MenuItem{ID: "big", Price: 100}
	small := models.MenuItem{ID: "small", Price: 50}

	forward := NewCart()
	backward := NewCart()
	for i := 0; i < 2; i++ {
		forward.Add(big, models.NewCustomization(big))
	}
	for i := 0; i < 3; i++ {
		forward.Add(small, models.NewCustomization(small))
		backward.Add(small, models.NewCustomization(small))
	}
	for i := 0; i < 2; i++ {
		backward.Add(big, models.NewCustomization(big))
	}

	assert.Equal(t, 350, forward.Total())
	assert.Equal(t, 350, backward.Total())
}
