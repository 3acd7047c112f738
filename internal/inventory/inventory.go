package inventory

import (
	"fmt"
	"slices"
	"sync"

	"restaurant-orders/internal/models"
)

// Inventory tracks in-memory stock counts by item name. Items never
// registered are treated as always available, so the ordering flow can
// run with a partially stocked catalog.
type Inventory struct {
	mu    sync.Mutex
	stock map[string]int
}

func New() *Inventory {
	return &Inventory{stock: make(map[string]int)}
}

// SetStock registers an item with an absolute stock count.
func (inv *Inventory) SetStock(name string, count int) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.stock[name] = count
}

// Stock returns the tracked count for an item; untracked items report -1.
func (inv *Inventory) Stock(name string) int {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	count, ok := inv.stock[name]
	if !ok {
		return -1
	}
	return count
}

// Available reports whether every item can be served, along with the
// names that cannot.
func (inv *Inventory) Available(items []models.MenuItem) (bool, []string) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	var missing []string
	for name, needed := range countByName(items) {
		if count, ok := inv.stock[name]; ok && count < needed {
			missing = append(missing, name)
		}
	}
	slices.Sort(missing)
	return len(missing) == 0, missing
}

// Reserve decrements stock for every tracked item, all or nothing.
func (inv *Inventory) Reserve(items []models.MenuItem) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	needed := countByName(items)
	for name, n := range needed {
		if count, ok := inv.stock[name]; ok && count < n {
			return fmt.Errorf("insufficient stock for %q: have %d, need %d", name, count, n)
		}
	}
	for name, n := range needed {
		if _, ok := inv.stock[name]; ok {
			inv.stock[name] -= n
		}
	}
	return nil
}

// Restore returns previously reserved stock, e.g. after a cancellation.
func (inv *Inventory) Restore(items []models.MenuItem) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for name, n := range countByName(items) {
		if _, ok := inv.stock[name]; ok {
			inv.stock[name] += n
		}
	}
}

// Unavailable lists the tracked items that are out of stock, sorted.
// The result feeds the validation chain's inventory check.
func (inv *Inventory) Unavailable() []string {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	var names []string
	for name, count := range inv.stock {
		if count <= 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

func countByName(items []models.MenuItem) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item.Name]++
	}
	return counts
}
