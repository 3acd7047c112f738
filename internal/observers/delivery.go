package observers

import (
	"math/rand"
	"sync"

	"restaurant-orders/internal/models"
)

var defaultDrivers = []string{"Mike", "Sarah", "John", "Emma"}

// DeliveryCoordinator assigns a driver when an order becomes ready and
// confirms the hand-off once it is delivered.
type DeliveryCoordinator struct {
	drivers []string

	mu        sync.Mutex
	pending   map[int]string // order id -> assigned driver
	delivered map[int]string
}

// NewDeliveryCoordinator creates the coordinator with the given driver
// pool, or the default roster when none is given.
func NewDeliveryCoordinator(drivers ...string) *DeliveryCoordinator {
	if len(drivers) == 0 {
		drivers = defaultDrivers
	}
	return &DeliveryCoordinator{
		drivers:   drivers,
		pending:   make(map[int]string),
		delivered: make(map[int]string),
	}
}

func (d *DeliveryCoordinator) Update(order *models.Order, oldStatus, newStatus models.OrderStatus) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch newStatus {
	case models.StatusReady:
		d.pending[order.ID()] = d.drivers[rand.Intn(len(d.drivers))]
	case models.StatusDelivered:
		driver := d.pending[order.ID()]
		delete(d.pending, order.ID())
		d.delivered[order.ID()] = driver
	}
	return nil
}

// AssignedDriver reports the driver for an order awaiting delivery.
func (d *DeliveryCoordinator) AssignedDriver(orderID int) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	driver, ok := d.pending[orderID]
	return driver, ok
}

// Delivered reports whether an order's delivery has been confirmed.
func (d *DeliveryCoordinator) Delivered(orderID int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.delivered[orderID]
	return ok
}

// PendingCount is the number of orders waiting on a delivery.
func (d *DeliveryCoordinator) PendingCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
