package observers

import (
	"slices"
	"sync"

	"restaurant-orders/internal/models"
)

// KitchenDisplay mirrors the kitchen's active-order queue. Orders enter
// the queue when confirmed or preparing and leave it once ready,
// delivered or cancelled.
type KitchenDisplay struct {
	mu     sync.Mutex
	active map[int]*models.Order
}

func NewKitchenDisplay() *KitchenDisplay {
	return &KitchenDisplay{active: make(map[int]*models.Order)}
}

func (k *KitchenDisplay) Update(order *models.Order, oldStatus, newStatus models.OrderStatus) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	switch newStatus {
	case models.StatusConfirmed, models.StatusPreparing:
		k.active[order.ID()] = order
	case models.StatusReady, models.StatusDelivered, models.StatusCancelled:
		delete(k.active, order.ID())
	}
	return nil
}

// ActiveOrders returns the ids currently on the display, in ascending order.
func (k *KitchenDisplay) ActiveOrders() []int {
	k.mu.Lock()
	defer k.mu.Unlock()
	ids := make([]int, 0, len(k.active))
	for id := range k.active {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (k *KitchenDisplay) IsActive(orderID int) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	_, ok := k.active[orderID]
	return ok
}
