package ordering

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
)

// ErrOrderNotFound is returned for lookups of unknown order ids.
var ErrOrderNotFound = errors.New("order not found")

// Manager is the process-wide order registry. Exactly one instance is
// created at startup and injected into every component that needs it;
// there is deliberately no package-level singleton.
type Manager struct {
	mu     sync.Mutex
	orders map[int]*models.Order
	nextID int

	logger *logger.Logger
}

func NewManager(log *logger.Logger) *Manager {
	return &Manager{
		orders: make(map[int]*models.Order),
		nextID: 1,
		logger: log,
	}
}

// CreateOrder registers a new pending order and assigns the next id.
func (m *Manager) CreateOrder(customerName string) *models.Order {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	order := models.NewOrder(id, customerName)
	m.orders[id] = order
	m.mu.Unlock()

	if m.logger != nil {
		m.logger.Debug("order_created", "", "Order registered", map[string]interface{}{
			"order_id": id,
			"customer": customerName,
		})
	}
	return order
}

// GetOrder looks up an order by id.
func (m *Manager) GetOrder(id int) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrOrderNotFound, id)
	}
	return order, nil
}

// AllOrders returns every registered order, sorted by id.
func (m *Manager) AllOrders() []*models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	orders := make([]*models.Order, 0, len(m.orders))
	for _, order := range m.orders {
		orders = append(orders, order)
	}
	slices.SortFunc(orders, func(a, b *models.Order) int { return a.ID() - b.ID() })
	return orders
}

// OrderCount is the number of registered orders.
func (m *Manager) OrderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// CompleteOrder marks an order delivered. Observer failures are
// reported but the transition still happens.
func (m *Manager) CompleteOrder(id int) error {
	order, err := m.GetOrder(id)
	if err != nil {
		return err
	}
	return order.SetStatus(models.StatusDelivered)
}

// CancelOrder marks an order cancelled.
func (m *Manager) CancelOrder(id int) error {
	order, err := m.GetOrder(id)
	if err != nil {
		return err
	}
	return order.SetStatus(models.StatusCancelled)
}

// TotalRevenue sums the totals of delivered orders.
func (m *Manager) TotalRevenue() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	revenue := 0.0
	for _, order := range m.orders {
		if order.Status() == models.StatusDelivered {
			revenue += order.Total()
		}
	}
	return revenue
}
