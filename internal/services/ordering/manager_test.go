package ordering

import (
	"errors"
	"testing"

	"restaurant-orders/internal/models"
)

func TestManager_CreateAssignsMonotonicIDs(t *testing.T) {
	m := NewManager(nil)

	first := m.CreateOrder("Alice")
	second := m.CreateOrder("Bob")
	third := m.CreateOrder("Carol")

	if first.ID() != 1 || second.ID() != 2 || third.ID() != 3 {
		t.Fatalf("ids = %d, %d, %d; want 1, 2, 3", first.ID(), second.ID(), third.ID())
	}
	if m.OrderCount() != 3 {
		t.Fatalf("OrderCount = %d, want 3", m.OrderCount())
	}
}

func TestManager_GetOrder(t *testing.T) {
	m := NewManager(nil)
	created := m.CreateOrder("Alice")

	got, err := m.GetOrder(created.ID())
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if got != created {
		t.Fatal("GetOrder returned a different order instance")
	}

	_, err = m.GetOrder(999)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestManager_CompleteAndCancel(t *testing.T) {
	m := NewManager(nil)
	order := m.CreateOrder("Alice")
	order.AddItem(models.MenuItem{Name: "Pizza", Price: 14.99, Category: models.CategoryMainCourse})

	if err := m.CompleteOrder(order.ID()); err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}
	if order.Status() != models.StatusDelivered {
		t.Fatalf("status = %s, want delivered", order.Status())
	}

	other := m.CreateOrder("Bob")
	if err := m.CancelOrder(other.ID()); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if other.Status() != models.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", other.Status())
	}

	if err := m.CompleteOrder(42); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestManager_TotalRevenue(t *testing.T) {
	m := NewManager(nil)

	delivered := m.CreateOrder("Alice")
	delivered.AddItem(models.MenuItem{Name: "Pizza", Price: 20.00, Category: models.CategoryMainCourse})
	if err := m.CompleteOrder(delivered.ID()); err != nil {
		t.Fatalf("CompleteOrder: %v", err)
	}

	cancelled := m.CreateOrder("Bob")
	cancelled.AddItem(models.MenuItem{Name: "Burger", Price: 12.00, Category: models.CategoryMainCourse})
	if err := m.CancelOrder(cancelled.ID()); err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	pending := m.CreateOrder("Carol")
	pending.AddItem(models.MenuItem{Name: "Tea", Price: 3.00, Category: models.CategoryBeverage})

	if got := m.TotalRevenue(); got != 20.00 {
		t.Fatalf("TotalRevenue = %v, want 20.00 (delivered orders only)", got)
	}
}

func TestManager_AllOrdersSortedByID(t *testing.T) {
	m := NewManager(nil)
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		m.CreateOrder(name)
	}

	orders := m.AllOrders()
	if len(orders) != 3 {
		t.Fatalf("len = %d, want 3", len(orders))
	}
	for i, order := range orders {
		if order.ID() != i+1 {
			t.Fatalf("orders[%d].ID() = %d, want %d", i, order.ID(), i+1)
		}
	}
}
