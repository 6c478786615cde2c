package services

import (
	"testing"

	"fartburger/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemDialog_OpenSeedsFirstChoices(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	state := d.State()
	require.True(t, state.Open)
	assert.Equal(t, "S", state.Customization.SelectedOptions[models.OptionSize])
	assert.Equal(t, "1шт", state.Customization.SelectedOptions[models.OptionCount])
	assert.Empty(t, state.Customization.RemovedIngredients)
	assert.Empty(t, state.Customization.AddedIngredients)
	assert.Equal(t, 200, state.Price)
}

func TestItemDialog_ClosedZeroValue(t *testing.T) {
	var d ItemDialog

	assert.False(t, d.IsOpen())
	assert.Equal(t, models.DialogState{}, d.State())
	assert.Equal(t, 0, d.Price())
	assert.ErrorIs(t, d.SelectOption(models.OptionSize, "S"), ErrDialogClosed)

	_, ok := d.AddToCart(NewCart())
	assert.False(t, ok)
}

func TestItemDialog_SelectOption(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	require.NoError(t, d.SelectOption(models.OptionCount, "2шт"))
	assert.Equal(t, 350, d.Price())

	err := d.SelectOption(models.OptionCount, "9шт")
	assert.ErrorIs(t, err, ErrInvalidOption)
	err = d.SelectOption(models.OptionFlavor, "Ваниль")
	assert.ErrorIs(t, err, ErrInvalidOption)

	assert.Equal(t, "2шт", d.State().Customization.SelectedOptions[models.OptionCount])
}

func TestItemDialog_ToggleIngredientTwiceRestores(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	d.ToggleIngredient("Сыр")
	assert.Equal(t, []string{"Сыр"}, d.State().Customization.RemovedIngredients)

	d.ToggleIngredient("Сыр")
	assert.Empty(t, d.State().Customization.RemovedIngredients)
}

func TestItemDialog_ToggleIgnoresForeignIngredient(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	d.ToggleIngredient("Лук")
	d.AddIngredient("Лук")

	state := d.State()
	assert.Empty(t, state.Customization.RemovedIngredients)
	assert.Empty(t, state.Customization.AddedIngredients)
}

func TestItemDialog_AddIngredientCapsAtThree(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	for i := 0; i < 5; i++ {
		d.AddIngredient("Сыр")
	}

	state := d.State()
	assert.Equal(t, MaxAddedPerIngredient, state.Customization.AddedIngredients["Сыр"])
	assert.Equal(t, 3*AddedIngredientSurcharge, state.Surcharge)
	assert.Equal(t, 200+90, state.Price)
}

func TestItemDialog_RemoveIngredient(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	d.AddIngredient("Соус")
	d.AddIngredient("Соус")
	d.RemoveIngredient("Соус")
	assert.Equal(t, 1, d.State().Customization.AddedIngredients["Соус"])

	d.RemoveIngredient("Соус")
	_, present := d.State().Customization.AddedIngredients["Соус"]
	assert.False(t, present)

	d.RemoveIngredient("Соус")
	assert.Empty(t, d.State().Customization.AddedIngredients)
}

func TestItemDialog_AddToCartClosesDialog(t *testing.T) {
	var d ItemDialog
	cart := NewCart()
	d.Open(sizedItem())
	d.AddIngredient("Сыр")

	line, ok := d.AddToCart(cart)
	require.True(t, ok)
	assert.Equal(t, 230, line.UnitPrice)
	assert.False(t, d.IsOpen())
	assert.Equal(t, 1, cart.ItemCount())
}

func TestItemDialog_StateIsDetached(t *testing.T) {
	var d ItemDialog
	d.Open(sizedItem())

	state := d.State()
	state.Customization.AddedIngredients["Сыр"] = 3
	state.Customization.SelectedOptions[models.OptionSize] = "L"

	assert.Empty(t, d.State().Customization.AddedIngredients)
	assert.Equal(t, "S", d.State().Customization.SelectedOptions[models.OptionSize])
}
