package observers

import (
	"fmt"
	"sync"
	"time"

	"restaurant-orders/internal/models"
	"restaurant-orders/internal/notification"
)

// Notification is a record of one message sent to a customer.
type Notification struct {
	Time     time.Time
	OrderID  int
	Customer string
	Method   string
	Message  string
}

// CustomerNotification formats and delivers a status message to the
// customer on every transition, keyed by the new status.
type CustomerNotification struct {
	method   string
	notifier notification.Notifier

	mu   sync.Mutex
	sent []Notification
}

// NewCustomerNotification creates the observer for a delivery channel
// such as "SMS" or "Email".
func NewCustomerNotification(method string, notifier notification.Notifier) *CustomerNotification {
	return &CustomerNotification{method: method, notifier: notifier}
}

func (c *CustomerNotification) Update(order *models.Order, oldStatus, newStatus models.OrderStatus) error {
	message := c.messageFor(order, newStatus)

	c.mu.Lock()
	c.sent = append(c.sent, Notification{
		Time:     time.Now(),
		OrderID:  order.ID(),
		Customer: order.CustomerName(),
		Method:   c.method,
		Message:  message,
	})
	c.mu.Unlock()

	if c.notifier != nil {
		c.notifier.Notify(fmt.Sprintf("[%s] to %s: %s", c.method, order.CustomerName(), message))
	}
	return nil
}

// messageFor picks the template for the new status, falling back to a
// generic message for unrecognized statuses.
func (c *CustomerNotification) messageFor(order *models.Order, status models.OrderStatus) string {
	switch status {
	case models.StatusConfirmed:
		return fmt.Sprintf("Order #%d confirmed! Preparing your food...", order.ID())
	case models.StatusPreparing:
		return fmt.Sprintf("Your order #%d is being prepared", order.ID())
	case models.StatusReady:
		return fmt.Sprintf("Order #%d is ready for pickup!", order.ID())
	case models.StatusDelivered:
		return fmt.Sprintf("Order #%d has been delivered. Enjoy your meal!", order.ID())
	case models.StatusCancelled:
		return fmt.Sprintf("Order #%d has been cancelled.", order.ID())
	default:
		return fmt.Sprintf("Order #%d status: %s", order.ID(), status)
	}
}

// Sent returns the notifications recorded so far, oldest first.
func (c *CustomerNotification) Sent() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.sent))
	copy(out, c.sent)
	return out
}
