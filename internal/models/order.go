package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// IsTerminal reports whether no further transitions are expected.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Observer is notified synchronously on every order status change.
type Observer interface {
	Update(order *Order, oldStatus, newStatus OrderStatus) error
}

// Order is a customer order. Item and status mutations are safe for
// concurrent use; observers are invoked outside the order lock so they
// may read the order freely.
type Order struct {
	mu                  sync.RWMutex
	id                  int
	customerName        string
	items               []MenuItem
	status              OrderStatus
	specialInstructions string
	total               float64
	createdAt           time.Time
	observers           []Observer
}

// NewOrder creates an order in the pending status. Orders are normally
// created through the order manager, which assigns the id.
func NewOrder(id int, customerName string) *Order {
	return NewOrderAt(id, customerName, time.Now())
}

// NewOrderAt creates an order with an explicit creation time.
func NewOrderAt(id int, customerName string, createdAt time.Time) *Order {
	return &Order{
		id:           id,
		customerName: customerName,
		status:       StatusPending,
		createdAt:    createdAt,
	}
}

func (o *Order) ID() int {
	return o.id
}

func (o *Order) CustomerName() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.customerName
}

func (o *Order) SetCustomerName(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.customerName = name
}

func (o *Order) SpecialInstructions() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.specialInstructions
}

func (o *Order) SetSpecialInstructions(instructions string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.specialInstructions = instructions
}

// Items returns the order items in insertion order, which is the
// display order.
func (o *Order) Items() []MenuItem {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return slices.Clone(o.items)
}

func (o *Order) ItemCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.items)
}

// Total is always the sum of the current items' prices.
func (o *Order) Total() float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.total
}

func (o *Order) Status() OrderStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AddItem appends an item and recomputes the total.
func (o *Order) AddItem(item MenuItem) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.items = append(o.items, item)
	o.recalculateTotal()
}

// RemoveItem removes the first item equal to the given one and recomputes
// the total. Removing an absent item is a no-op.
func (o *Order) RemoveItem(item MenuItem) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, existing := range o.items {
		if existing.Equal(item) {
			o.items = slices.Delete(o.items, i, i+1)
			o.recalculateTotal()
			return
		}
	}
}

// recalculateTotal must be called with the lock held.
func (o *Order) recalculateTotal() {
	total := 0.0
	for _, item := range o.items {
		total += item.Price
	}
	o.total = total
}

// SetStatus assigns the new status and notifies every attached observer
// with the (order, old, new) triple, in subscription order. Any status
// value is accepted; no transition graph is enforced. Observer failures
// are isolated: every observer is notified regardless, and the collected
// failures are returned joined.
func (o *Order) SetStatus(status OrderStatus) error {
	o.mu.Lock()
	oldStatus := o.status
	o.status = status
	observers := slices.Clone(o.observers)
	o.mu.Unlock()

	var errs []error
	for _, observer := range observers {
		if err := notify(observer, o, oldStatus, status); err != nil {
			errs = append(errs, fmt.Errorf("order %d: observer update failed: %w", o.id, err))
		}
	}
	return errors.Join(errs...)
}

// Attach subscribes an observer. Attaching an already-attached observer
// is a no-op.
func (o *Order) Attach(observer Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, existing := range o.observers {
		if existing == observer {
			return
		}
	}
	o.observers = append(o.observers, observer)
}

// Detach unsubscribes an observer. Detaching an absent observer is a no-op.
func (o *Order) Detach(observer Observer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, existing := range o.observers {
		if existing == observer {
			o.observers = slices.Delete(o.observers, i, i+1)
			return
		}
	}
}

func (o *Order) ObserverCount() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return len(o.observers)
}

func (o *Order) String() string {
	o.mu.RLock()
	defer o.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Order #%d - %s\n", o.id, o.customerName)
	fmt.Fprintf(&b, "Status: %s\n", o.status)
	b.WriteString("Items:\n")
	for _, item := range o.items {
		fmt.Fprintf(&b, "  %s\n", item)
	}
	fmt.Fprintf(&b, "Total: $%.2f", o.total)
	return b.String()
}

// notify shields the caller from a panicking observer.
func notify(observer Observer, order *Order, oldStatus, newStatus OrderStatus) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("observer panicked: %v", r)
		}
	}()
	return observer.Update(order, oldStatus, newStatus)
}
