package services

import (
	"fartburger/models"

	"github.com/google/uuid"
)

type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{lines: []models.CartLine{}}
}

// Add merges an item configuration into the cart. A line with an equal configuration
// gets its quantity bumped and keeps its original unit price; otherwise a new line is
// appended with a freshly computed price.
func (c *Cart) Add(item models.MenuItem, custom models.Customization) models.CartLine {
	key := custom.Key(item.ID)
	for i := range c.lines {
		if c.lines[i].Key() == key {
			c.lines[i].Quantity++
			return c.view(c.lines[i])
		}
	}

	snapshot := custom.Clone()
	line := models.CartLine{
		LineID:        uuid.NewString(),
		Item:          item,
		Quantity:      1,
		UnitPrice:     CalculatePrice(item, snapshot.SelectedOptions, snapshot.AddedIngredients),
		Customization: snapshot,
	}
	c.lines = append(c.lines, line)
	return c.view(line)
}

func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		out = append(out, c.view(l))
	}
	return out
}

func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.UnitPrice * l.Quantity
	}
	return total
}

// ItemCount is the badge number on the cart button.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = []models.CartLine{}
}

func (c *Cart) State() models.CartState {
	return models.CartState{
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

func (c *Cart) view(l models.CartLine) models.CartLine {
	l.Customization = l.Customization.Clone()
	l.LineTotal = l.UnitPrice * l.Quantity
	l.Summary = l.Describe()
	return l
}
