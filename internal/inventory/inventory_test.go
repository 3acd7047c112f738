package inventory

import (
	"testing"

	"restaurant-orders/internal/models"
)

func item(name string) models.MenuItem {
	return models.MenuItem{Name: name, Price: 9.99, Category: models.CategoryMainCourse}
}

func TestAvailable(t *testing.T) {
	inv := New()
	inv.SetStock("Margherita Pizza", 2)
	inv.SetStock("Tiramisu", 0)

	ok, missing := inv.Available([]models.MenuItem{item("Margherita Pizza"), item("Pad Thai")})
	if !ok || len(missing) != 0 {
		t.Fatalf("expected available, got missing=%v", missing)
	}

	// Two of a kind with stock for two is fine; three is not.
	ok, _ = inv.Available([]models.MenuItem{item("Margherita Pizza"), item("Margherita Pizza")})
	if !ok {
		t.Fatal("expected stock of 2 to cover 2 orders")
	}
	ok, missing = inv.Available([]models.MenuItem{
		item("Margherita Pizza"), item("Margherita Pizza"), item("Margherita Pizza"),
	})
	if ok || len(missing) != 1 || missing[0] != "Margherita Pizza" {
		t.Fatalf("expected Margherita Pizza to be missing, got ok=%v missing=%v", ok, missing)
	}
}

func TestReserveAndRestore(t *testing.T) {
	inv := New()
	inv.SetStock("Garlic Bread", 1)

	if err := inv.Reserve([]models.MenuItem{item("Garlic Bread"), item("Pad Thai")}); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if got := inv.Stock("Garlic Bread"); got != 0 {
		t.Fatalf("stock after reserve = %d, want 0", got)
	}
	if got := inv.Stock("Pad Thai"); got != -1 {
		t.Fatalf("untracked item stock = %d, want -1", got)
	}

	// All-or-nothing: a failed reservation must not decrement anything.
	inv.SetStock("Spring Rolls", 1)
	err := inv.Reserve([]models.MenuItem{item("Spring Rolls"), item("Garlic Bread")})
	if err == nil {
		t.Fatal("expected reservation failure for out-of-stock item")
	}
	if got := inv.Stock("Spring Rolls"); got != 1 {
		t.Fatalf("stock touched by failed reservation: %d", got)
	}

	inv.Restore([]models.MenuItem{item("Garlic Bread")})
	if got := inv.Stock("Garlic Bread"); got != 1 {
		t.Fatalf("stock after restore = %d, want 1", got)
	}
}

func TestUnavailable(t *testing.T) {
	inv := New()
	if got := inv.Unavailable(); len(got) != 0 {
		t.Fatalf("empty inventory reported unavailable items: %v", got)
	}

	inv.SetStock("Tiramisu", 0)
	inv.SetStock("Apple Pie", 3)
	inv.SetStock("Green Tea", 0)

	got := inv.Unavailable()
	want := []string{"Green Tea", "Tiramisu"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("Unavailable() = %v, want %v", got, want)
	}
}
