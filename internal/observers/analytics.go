package observers

import (
	"sync"
	"time"

	"restaurant-orders/internal/models"
)

// StatusChange is one recorded order transition.
type StatusChange struct {
	OrderID   int
	OldStatus models.OrderStatus
	NewStatus models.OrderStatus
	Timestamp time.Time
	Total     float64
}

// Summary is a snapshot of the collected analytics.
type Summary struct {
	TotalStatusChanges int
	CompletedOrders    int
	CancelledOrders    int
	TotalRevenue       float64
	CompletionRate     float64
}

// Analytics records every order transition and aggregates completion
// and revenue figures.
type Analytics struct {
	mu        sync.Mutex
	history   []StatusChange
	completed int
	cancelled int
	revenue   float64
}

func NewAnalytics() *Analytics {
	return &Analytics{}
}

func (a *Analytics) Update(order *models.Order, oldStatus, newStatus models.OrderStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.history = append(a.history, StatusChange{
		OrderID:   order.ID(),
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: time.Now(),
		Total:     order.Total(),
	})

	switch newStatus {
	case models.StatusDelivered:
		a.completed++
		a.revenue += order.Total()
	case models.StatusCancelled:
		a.cancelled++
	}
	return nil
}

// CompletionRate is completed / (completed + cancelled), or 0 when no
// order has reached a terminal state yet.
func (a *Analytics) CompletionRate() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.completionRateLocked()
}

func (a *Analytics) completionRateLocked() float64 {
	finished := a.completed + a.cancelled
	if finished == 0 {
		return 0
	}
	return float64(a.completed) / float64(finished)
}

// History returns the recorded transitions, oldest first.
func (a *Analytics) History() []StatusChange {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]StatusChange, len(a.history))
	copy(out, a.history)
	return out
}

func (a *Analytics) GetSummary() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Summary{
		TotalStatusChanges: len(a.history),
		CompletedOrders:    a.completed,
		CancelledOrders:    a.cancelled,
		TotalRevenue:       a.revenue,
		CompletionRate:     a.completionRateLocked(),
	}
}
