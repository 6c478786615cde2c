package models

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

type Customization struct {
	SelectedOptions    map[OptionType]string `json:"selected_options"`
	RemovedIngredients []string              `json:"removed_ingredients"`
	AddedIngredients   map[string]int        `json:"added_ingredients"`
}

// NewCustomization seeds every option group with its first choice.
func NewCustomization(item MenuItem) Customization {
	selected := make(map[OptionType]string, len(item.Options))
	for _, g := range item.Options {
		if len(g.Choices) > 0 {
			selected[g.Type] = g.Choices[0].Label
		}
	}
	return Customization{
		SelectedOptions:    selected,
		RemovedIngredients: []string{},
		AddedIngredients:   map[string]int{},
	}
}

func (c Customization) IsRemoved(name string) bool {
	return slices.Contains(c.RemovedIngredients, name)
}

func (c Customization) AddedCount() int {
	total := 0
	for _, n := range c.AddedIngredients {
		if n > 0 {
			total += n
		}
	}
	return total
}

// Clone returns a deep copy so cart snapshots never share maps with a live dialog.
func (c Customization) Clone() Customization {
	out := Customization{
		SelectedOptions:    make(map[OptionType]string, len(c.SelectedOptions)),
		RemovedIngredients: slices.Clone(c.RemovedIngredients),
		AddedIngredients:   make(map[string]int, len(c.AddedIngredients)),
	}
	if out.RemovedIngredients == nil {
		out.RemovedIngredients = []string{}
	}
	for k, v := range c.SelectedOptions {
		out.SelectedOptions[k] = v
	}
	for k, v := range c.AddedIngredients {
		out.AddedIngredients[k] = v
	}
	return out
}

// Key derives the canonical identity of a configuration. Options, removed and added
// entries are sorted so map iteration and toggle order never matter.
func (c Customization) Key(itemID string) string {
	var b strings.Builder
	b.WriteString(itemID)

	types := make([]string, 0, len(c.SelectedOptions))
	for t := range c.SelectedOptions {
		types = append(types, string(t))
	}
	sort.Strings(types)
	b.WriteString("|o")
	for _, t := range types {
		fmt.Fprintf(&b, "|%q=%q", t, c.SelectedOptions[OptionType(t)])
	}

	removed := slices.Clone(c.RemovedIngredients)
	sort.Strings(removed)
	removed = slices.Compact(removed)
	b.WriteString("|r")
	for _, r := range removed {
		fmt.Fprintf(&b, "|%q", r)
	}

	added := make([]string, 0, len(c.AddedIngredients))
	for name, n := range c.AddedIngredients {
		if n > 0 {
			added = append(added, name)
		}
	}
	sort.Strings(added)
	b.WriteString("|a")
	for _, name := range added {
		fmt.Fprintf(&b, "|%q=%d", name, c.AddedIngredients[name])
	}
	return b.String()
}

type CartLine struct {
	LineID        string   `json:"line_id"`
	Item          MenuItem `json:"item"`
	Quantity      int      `json:"quantity"`
	UnitPrice     int      `json:"unit_price"`
	LineTotal     int      `json:"line_total"`
	Summary       []string `json:"summary,omitempty"`
	Customization `json:"customization"`
}

func (l CartLine) Key() string {
	return l.Customization.Key(l.Item.ID)
}

// Describe renders the configuration the way the cart sheet lists it.
func (l CartLine) Describe() []string {
	var out []string

	if len(l.SelectedOptions) > 0 {
		labels := make([]string, 0, len(l.SelectedOptions))
		for _, g := range l.Item.Options {
			if label, ok := l.SelectedOptions[g.Type]; ok {
				labels = append(labels, label)
			}
		}
		if len(labels) > 0 {
			out = append(out, strings.Join(labels, ", "))
		}
	}

	if len(l.RemovedIngredients) > 0 {
		out = append(out, "Без: "+strings.Join(l.RemovedIngredients, ", "))
	}

	if len(l.AddedIngredients) > 0 {
		added := make([]string, 0, len(l.AddedIngredients))
		for _, name := range l.Item.Ingredients {
			if n := l.AddedIngredients[name]; n > 0 {
				added = append(added, fmt.Sprintf("%s x%d", name, n))
			}
		}
		if len(added) > 0 {
			out = append(out, "Добавлено: "+strings.Join(added, ", "))
		}
	}
	return out
}
