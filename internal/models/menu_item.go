package models

import (
	"fmt"
	"slices"
)

// Category classifies a menu item on the printed menu
type Category string

const (
	CategoryMainCourse Category = "Main Course"
	CategorySideDish   Category = "Side Dish"
	CategoryBeverage   Category = "Beverage"
	CategoryDessert    Category = "Dessert"
)

// MenuItem represents a purchasable item. Treated as immutable after
// construction; derive variations through Clone.
type MenuItem struct {
	Name        string
	Price       float64
	Category    Category
	Size        string // beverages only
	Ingredients []string
}

// Clone returns an independent copy of the item.
func (m MenuItem) Clone() MenuItem {
	clone := m
	clone.Ingredients = slices.Clone(m.Ingredients)
	return clone
}

// Equal reports whether two items describe the same menu entry.
func (m MenuItem) Equal(other MenuItem) bool {
	return m.Name == other.Name &&
		m.Price == other.Price &&
		m.Category == other.Category &&
		m.Size == other.Size &&
		slices.Equal(m.Ingredients, other.Ingredients)
}

// Description renders the item name, including size for beverages.
func (m MenuItem) Description() string {
	if m.Size != "" {
		return fmt.Sprintf("%s (%s)", m.Name, m.Size)
	}
	return m.Name
}

func (m MenuItem) String() string {
	return fmt.Sprintf("%s - $%.2f", m.Description(), m.Price)
}
