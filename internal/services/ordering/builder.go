package ordering

import (
	"fmt"
	"strings"

	"restaurant-orders/internal/models"
)

// Builder stages an order before it enters the registry. Precondition
// violations surface at Build time only, not at each intermediate step.
type Builder struct {
	manager             *Manager
	customerName        string
	items               []models.MenuItem
	specialInstructions string
}

// NewOrderBuilder starts a builder whose Build registers the order with
// this manager.
func (m *Manager) NewOrderBuilder() *Builder {
	return &Builder{manager: m}
}

func (b *Builder) ForCustomer(customerName string) *Builder {
	b.customerName = customerName
	return b
}

func (b *Builder) AddItem(item models.MenuItem) *Builder {
	b.items = append(b.items, item)
	return b
}

func (b *Builder) AddItems(items ...models.MenuItem) *Builder {
	b.items = append(b.items, items...)
	return b
}

func (b *Builder) WithSpecialInstructions(instructions string) *Builder {
	b.specialInstructions = instructions
	return b
}

// Build validates the staged order, registers it and returns it.
func (b *Builder) Build() (*models.Order, error) {
	if strings.TrimSpace(b.customerName) == "" {
		return nil, fmt.Errorf("cannot build order: customer name is required")
	}
	if len(b.items) == 0 {
		return nil, fmt.Errorf("cannot build order: at least one item is required")
	}

	order := b.manager.CreateOrder(b.customerName)
	for _, item := range b.items {
		order.AddItem(item)
	}
	if b.specialInstructions != "" {
		order.SetSpecialInstructions(b.specialInstructions)
	}
	return order, nil
}
