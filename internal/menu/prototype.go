package menu

import (
	"fmt"
	"slices"
	"sync"

	"restaurant-orders/internal/models"
)

// PrototypeRegistry holds named menu item templates that can be cloned
// and customized, so popular variations don't have to be rebuilt from
// scratch each time.
type PrototypeRegistry struct {
	mu         sync.RWMutex
	prototypes map[string]models.MenuItem
}

// Option customizes a cloned menu item.
type Option func(*models.MenuItem)

func WithName(name string) Option {
	return func(item *models.MenuItem) { item.Name = name }
}

func WithPrice(price float64) Option {
	return func(item *models.MenuItem) { item.Price = price }
}

func WithSize(size string) Option {
	return func(item *models.MenuItem) { item.Size = size }
}

func WithExtraIngredients(ingredients ...string) Option {
	return func(item *models.MenuItem) {
		item.Ingredients = append(slices.Clone(item.Ingredients), ingredients...)
	}
}

// NewPrototypeRegistry returns an empty registry.
func NewPrototypeRegistry() *PrototypeRegistry {
	return &PrototypeRegistry{prototypes: make(map[string]models.MenuItem)}
}

// DefaultPrototypeRegistry returns a registry preloaded with the common
// menu templates.
func DefaultPrototypeRegistry() *PrototypeRegistry {
	r := NewPrototypeRegistry()

	r.Register("basic_burger", models.MenuItem{
		Name: "Basic Burger", Price: 8.99, Category: models.CategoryMainCourse,
		Ingredients: []string{"beef patty", "lettuce", "tomato", "bun"},
	})
	r.Register("cheese_burger", models.MenuItem{
		Name: "Cheeseburger", Price: 10.99, Category: models.CategoryMainCourse,
		Ingredients: []string{"beef patty", "cheddar cheese", "lettuce", "tomato", "bun"},
	})
	r.Register("deluxe_burger", models.MenuItem{
		Name: "Deluxe Burger", Price: 14.99, Category: models.CategoryMainCourse,
		Ingredients: []string{"beef patty", "cheddar cheese", "bacon", "lettuce",
			"tomato", "pickles", "special sauce", "sesame bun"},
	})
	r.Register("margherita", models.MenuItem{
		Name: "Margherita", Price: 12.99, Category: models.CategoryMainCourse,
		Ingredients: []string{"tomato sauce", "mozzarella", "basil"},
	})
	r.Register("pepperoni", models.MenuItem{
		Name: "Pepperoni Pizza", Price: 14.99, Category: models.CategoryMainCourse,
		Ingredients: []string{"tomato sauce", "mozzarella", "pepperoni"},
	})
	r.Register("soda_small", models.MenuItem{Name: "Soda", Price: 1.99, Category: models.CategoryBeverage, Size: "Small"})
	r.Register("soda_medium", models.MenuItem{Name: "Soda", Price: 2.49, Category: models.CategoryBeverage, Size: "Medium"})
	r.Register("soda_large", models.MenuItem{Name: "Soda", Price: 2.99, Category: models.CategoryBeverage, Size: "Large"})
	r.Register("ice_cream", models.MenuItem{
		Name: "Ice Cream", Price: 4.99, Category: models.CategoryDessert,
		Ingredients: []string{"vanilla ice cream", "chocolate sauce"},
	})

	return r
}

// Register stores a prototype under a key, replacing any previous one.
func (r *PrototypeRegistry) Register(key string, prototype models.MenuItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prototypes[key] = prototype.Clone()
}

// Unregister removes a prototype; unknown keys are ignored.
func (r *PrototypeRegistry) Unregister(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prototypes, key)
}

// Clone returns an independent copy of the prototype stored under key.
func (r *PrototypeRegistry) Clone(key string) (models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prototype, ok := r.prototypes[key]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("prototype %q not found", key)
	}
	return prototype.Clone(), nil
}

// CloneWith clones a prototype and applies customizations to the copy.
func (r *PrototypeRegistry) CloneWith(key string, opts ...Option) (models.MenuItem, error) {
	item, err := r.Clone(key)
	if err != nil {
		return models.MenuItem{}, err
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item, nil
}

// Keys returns the registered prototype keys in sorted order.
func (r *PrototypeRegistry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.prototypes))
	for key := range r.prototypes {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
