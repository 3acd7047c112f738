package menu

import (
	"fmt"

	"restaurant-orders/internal/models"
)

// Extra is a price/description modifier layered onto a base item, such as
// a topping or a size upgrade. Extras replace nested wrapper objects with
// an ordered list applied in sequence.
type Extra struct {
	Label string
	Price float64
}

var (
	ExtraCheese = Extra{Label: "Extra Cheese", Price: 1.50}
	Bacon       = Extra{Label: "Bacon", Price: 2.00}
	Avocado     = Extra{Label: "Avocado", Price: 2.50}
	ExtraSpicy  = Extra{Label: "Extra Spicy", Price: 0.50}
	GlutenFree  = Extra{Label: "Gluten-Free", Price: 1.00}
	LargeSize   = Extra{Label: "Large Size", Price: 2.00}
)

// ApplyExtras returns a copy of the item with every extra's price added
// and its label appended to the name, in the given order.
func ApplyExtras(item models.MenuItem, extras ...Extra) models.MenuItem {
	result := item.Clone()
	for _, extra := range extras {
		result.Price += extra.Price
		result.Name = fmt.Sprintf("%s + %s", result.Name, extra.Label)
	}
	return result
}
