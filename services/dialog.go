package services

import (
	"fmt"
	"slices"

	"fartburger/models"
)

// ItemDialog is the customization state of the item currently being configured.
// The zero value is a closed dialog.
type ItemDialog struct {
	item   *models.MenuItem
	custom models.Customization
}

func (d *ItemDialog) Open(item models.MenuItem) {
	d.item = &item
	d.custom = models.NewCustomization(item)
}

func (d *ItemDialog) IsOpen() bool {
	return d.item != nil
}

func (d *ItemDialog) Close() {
	d.item = nil
	d.custom = models.Customization{}
}

func (d *ItemDialog) SelectOption(t models.OptionType, label string) error {
	if !d.IsOpen() {
		return ErrDialogClosed
	}
	group, ok := d.item.Group(t)
	if !ok {
		return fmt.Errorf("%w: %s has no %q option", ErrInvalidOption, d.item.Name, t)
	}
	if _, ok := group.Choice(label); !ok {
		return fmt.Errorf("%w: %q is not a %q choice", ErrInvalidOption, label, t)
	}
	d.custom.SelectedOptions[t] = label
	return nil
}

func (d *ItemDialog) ToggleIngredient(name string) {
	if !d.IsOpen() || !d.item.HasIngredient(name) {
		return
	}
	if i := slices.Index(d.custom.RemovedIngredients, name); i >= 0 {
		d.custom.RemovedIngredients = slices.Delete(d.custom.RemovedIngredients, i, i+1)
		return
	}
	d.custom.RemovedIngredients = append(d.custom.RemovedIngredients, name)
}

func (d *ItemDialog) AddIngredient(name string) {
	if !d.IsOpen() || !d.item.HasIngredient(name) {
		return
	}
	if d.custom.AddedIngredients[name] >= MaxAddedPerIngredient {
		return
	}
	d.custom.AddedIngredients[name]++
}

func (d *ItemDialog) RemoveIngredient(name string) {
	if !d.IsOpen() {
		return
	}
	if current := d.custom.AddedIngredients[name]; current > 1 {
		d.custom.AddedIngredients[name] = current - 1
		return
	}
	delete(d.custom.AddedIngredients, name)
}

// Price is the live price shown in the open dialog.
func (d *ItemDialog) Price() int {
	if !d.IsOpen() {
		return 0
	}
	return CalculatePrice(*d.item, d.custom.SelectedOptions, d.custom.AddedIngredients)
}

// AddToCart merges the current configuration into cart and closes the dialog.
// It reports false when no dialog is open.
func (d *ItemDialog) AddToCart(cart *Cart) (models.CartLine, bool) {
	if !d.IsOpen() {
		return models.CartLine{}, false
	}
	line := cart.Add(*d.item, d.custom)
	d.Close()
	return line, true
}

func (d *ItemDialog) State() models.DialogState {
	if !d.IsOpen() {
		return models.DialogState{}
	}
	item := *d.item
	custom := d.custom.Clone()
	return models.DialogState{
		Open:          true,
		Item:          &item,
		Customization: &custom,
		Price:         d.Price(),
		Surcharge:     Surcharge(d.custom.AddedIngredients),
	}
}
