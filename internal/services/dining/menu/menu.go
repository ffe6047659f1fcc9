// Package menu holds the read-only food calorie table used by dining
// sessions.
package menu

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Item is one menu entry with its calories per serving.
type Item struct {
	Name     string
	Calories int
}

// Menu maps case-folded food names to calories per serving. It is never
// mutated after construction and is safe for concurrent use.
type Menu struct {
	items map[string]Item
}

var defaultItems = []Item{
	{Name: "hamburger", Calories: 550},
	{Name: "pizza", Calories: 285},
	{Name: "salad", Calories: 100},
	{Name: "french fries", Calories: 365},
	{Name: "coke", Calories: 140},
	{Name: "beer", Calories: 150},
	{Name: "rice", Calories: 130},
	{Name: "kimchi", Calories: 15},
	{Name: "ramen", Calories: 450},
	{Name: "bibimbap", Calories: 550},
}

// Default returns the standard restaurant menu.
func Default() *Menu {
	return New(defaultItems...)
}

// New builds a menu from items. Later duplicates replace earlier ones.
func New(items ...Item) *Menu {
	m := &Menu{items: make(map[string]Item, len(items))}
	for _, item := range items {
		key := Key(item.Name)
		if key == "" {
			continue
		}
		m.items[key] = Item{Name: key, Calories: item.Calories}
	}
	return m
}

// Key normalizes a food name for lookup.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Lookup returns the menu item for name, matched case-insensitively.
func (m *Menu) Lookup(name string) (Item, bool) {
	if m == nil {
		return Item{}, false
	}
	item, ok := m.items[Key(name)]
	return item, ok
}

// Items returns a copy of the menu sorted by name.
func (m *Menu) Items() []Item {
	if m == nil {
		return nil
	}
	items := make([]Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// Len returns the number of menu items.
func (m *Menu) Len() int {
	if m == nil {
		return 0
	}
	return len(m.items)
}
