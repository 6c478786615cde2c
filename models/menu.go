package models

import (
	"errors"
	"fmt"
	"slices"
)

type OptionType string

const (
	OptionSize      OptionType = "size"
	OptionVariety   OptionType = "type"
	OptionFlavor    OptionType = "flavor"
	OptionCount     OptionType = "count"
	OptionVolume    OptionType = "volume"
	OptionContainer OptionType = "container"
	OptionFilling   OptionType = "filling"
)

var optionLabels = map[OptionType]string{
	OptionSize:      "Размер",
	OptionVariety:   "Тип",
	OptionFlavor:    "Вкус",
	OptionCount:     "Количество",
	OptionVolume:    "Объём",
	OptionContainer: "Тара",
	OptionFilling:   "Начинка",
}

func (t OptionType) Valid() bool {
	_, ok := optionLabels[t]
	return ok
}

// Label returns the customer facing group title.
func (t OptionType) Label() string {
	return optionLabels[t]
}

type Choice struct {
	Label string `json:"label"`
	Price int    `json:"price"`
}

type OptionGroup struct {
	Type    OptionType `json:"type"`
	Choices []Choice   `json:"choices"`
}

func (g OptionGroup) Choice(label string) (Choice, bool) {
	for _, c := range g.Choices {
		if c.Label == label {
			return c, true
		}
	}
	return Choice{}, false
}

type MenuItem struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Price       int           `json:"price"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Ingredients []string      `json:"ingredients"`
	Protein     int           `json:"protein"`
	Fat         int           `json:"fat"`
	Carbs       int           `json:"carbs"`
	Options     []OptionGroup `json:"options,omitempty"`
	ImageURL    string        `json:"image_url"`
}

func (m MenuItem) HasIngredient(name string) bool {
	return slices.Contains(m.Ingredients, name)
}

func (m MenuItem) Group(t OptionType) (OptionGroup, bool) {
	for _, g := range m.Options {
		if g.Type == t {
			return g, true
		}
	}
	return OptionGroup{}, false
}

// Validate checks the catalog invariants of a single item.
func (m MenuItem) Validate() error {
	if m.ID == "" {
		return errors.New("menu item id is required")
	}
	if m.Price < 0 {
		return fmt.Errorf("menu item %s: negative price", m.ID)
	}

	seen := map[OptionType]bool{}
	for _, g := range m.Options {
		if !g.Type.Valid() {
			return fmt.Errorf("menu item %s: unknown option type %q", m.ID, g.Type)
		}
		if seen[g.Type] {
			return fmt.Errorf("menu item %s: duplicate option group %q", m.ID, g.Type)
		}
		seen[g.Type] = true

		if len(g.Choices) == 0 {
			return fmt.Errorf("menu item %s: option group %q has no choices", m.ID, g.Type)
		}
		labels := map[string]bool{}
		for _, c := range g.Choices {
			if labels[c.Label] {
				return fmt.Errorf("menu item %s: duplicate choice %q in %q", m.ID, c.Label, g.Type)
			}
			if c.Price < 0 {
				return fmt.Errorf("menu item %s: negative price for choice %q", m.ID, c.Label)
			}
			labels[c.Label] = true
		}
	}
	return nil
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

const CategoryAll = "all"
