package observers

import (
	"sync"

	"restaurant-orders/internal/models"
)

// Loyalty awards one point per whole currency unit of a delivered
// order's total, keyed by customer name. Point balances feed the
// loyalty pricing strategy.
type Loyalty struct {
	mu     sync.Mutex
	points map[string]int
}

func NewLoyalty() *Loyalty {
	return &Loyalty{points: make(map[string]int)}
}

func (l *Loyalty) Update(order *models.Order, oldStatus, newStatus models.OrderStatus) error {
	if newStatus != models.StatusDelivered {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.points[order.CustomerName()] += int(order.Total())
	return nil
}

// Points returns the customer's current balance, 0 for unknown customers.
func (l *Loyalty) Points(customerName string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.points[customerName]
}

// SetPoints overrides a customer's balance, for seeding known customers.
func (l *Loyalty) SetPoints(customerName string, points int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.points[customerName] = points
}
