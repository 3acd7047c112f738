package menu

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-orders/internal/models"
)

// Factory produces the fixed four-course menu of one cuisine.
type Factory interface {
	CreateMainCourse() models.MenuItem
	CreateSideDish() models.MenuItem
	CreateBeverage() models.MenuItem
	CreateDessert() models.MenuItem
}

// ErrUnknownCuisine is returned by ForCuisine for unrecognized cuisine keys.
var ErrUnknownCuisine = errors.New("unknown cuisine")

// ForCuisine returns the factory for a cuisine key (case-insensitive).
func ForCuisine(cuisine string) (Factory, error) {
	switch strings.ToLower(cuisine) {
	case "american":
		return AmericanFactory{}, nil
	case "italian":
		return ItalianFactory{}, nil
	case "asian":
		return AsianFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCuisine, cuisine)
	}
}

// Cuisines lists the supported cuisine keys.
func Cuisines() []string {
	return []string{"american", "italian", "asian"}
}

type AmericanFactory struct{}

func (AmericanFactory) CreateMainCourse() models.MenuItem {
	return models.MenuItem{
		Name:        "Classic Cheeseburger",
		Price:       12.99,
		Category:    models.CategoryMainCourse,
		Ingredients: []string{"beef patty", "cheese", "lettuce", "tomato", "bun"},
	}
}

func (AmericanFactory) CreateSideDish() models.MenuItem {
	return models.MenuItem{Name: "French Fries", Price: 3.99, Category: models.CategorySideDish}
}

func (AmericanFactory) CreateBeverage() models.MenuItem {
	return models.MenuItem{Name: "Coca Cola", Price: 2.49, Category: models.CategoryBeverage, Size: "Medium"}
}

func (AmericanFactory) CreateDessert() models.MenuItem {
	return models.MenuItem{
		Name:        "Apple Pie",
		Price:       4.99,
		Category:    models.CategoryDessert,
		Ingredients: []string{"apples", "cinnamon", "pastry"},
	}
}

type ItalianFactory struct{}

func (ItalianFactory) CreateMainCourse() models.MenuItem {
	return models.MenuItem{
		Name:        "Margherita Pizza",
		Price:       14.99,
		Category:    models.CategoryMainCourse,
		Ingredients: []string{"dough", "tomato sauce", "mozzarella", "basil"},
	}
}

func (ItalianFactory) CreateSideDish() models.MenuItem {
	return models.MenuItem{Name: "Garlic Bread", Price: 4.49, Category: models.CategorySideDish}
}

func (ItalianFactory) CreateBeverage() models.MenuItem {
	return models.MenuItem{Name: "Italian Soda", Price: 3.49, Category: models.CategoryBeverage, Size: "Medium"}
}

func (ItalianFactory) CreateDessert() models.MenuItem {
	return models.MenuItem{
		Name:        "Tiramisu",
		Price:       6.99,
		Category:    models.CategoryDessert,
		Ingredients: []string{"mascarpone", "coffee", "cocoa"},
	}
}

type AsianFactory struct{}

func (AsianFactory) CreateMainCourse() models.MenuItem {
	return models.MenuItem{
		Name:        "Pad Thai",
		Price:       13.99,
		Category:    models.CategoryMainCourse,
		Ingredients: []string{"rice noodles", "shrimp", "peanuts", "lime"},
	}
}

func (AsianFactory) CreateSideDish() models.MenuItem {
	return models.MenuItem{Name: "Spring Rolls", Price: 5.99, Category: models.CategorySideDish}
}

func (AsianFactory) CreateBeverage() models.MenuItem {
	return models.MenuItem{Name: "Green Tea", Price: 2.99, Category: models.CategoryBeverage, Size: "Medium"}
}

func (AsianFactory) CreateDessert() models.MenuItem {
	return models.MenuItem{
		Name:        "Mochi Ice Cream",
		Price:       5.49,
		Category:    models.CategoryDessert,
		Ingredients: []string{"rice cake", "ice cream"},
	}
}
