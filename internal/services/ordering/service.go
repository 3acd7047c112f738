package ordering

import (
	"errors"
	"fmt"

	"restaurant-orders/internal/inventory"
	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/models"
	"restaurant-orders/internal/notification"
	"restaurant-orders/internal/payment"
	"restaurant-orders/internal/pricing"
	"restaurant-orders/internal/validation"
)

var (
	ErrValidationFailed = errors.New("order validation failed")
	ErrItemsUnavailable = errors.New("items unavailable")
	ErrPaymentFailed    = errors.New("payment failed")
)

// Service runs the end-to-end order flow: registration, validation,
// availability, pricing, payment and the confirmed/cancelled transition.
// It hides those subsystems behind one call.
type Service struct {
	manager   *Manager
	inventory *inventory.Inventory
	notifier  notification.Notifier
	chain     *validation.Chain
	pricing   *pricing.Context
	observers []models.Observer
	logger    *logger.Logger
}

func NewService(
	manager *Manager,
	inv *inventory.Inventory,
	notifier notification.Notifier,
	chain *validation.Chain,
	pricingCtx *pricing.Context,
	log *logger.Logger,
	observers ...models.Observer,
) *Service {
	return &Service{
		manager:   manager,
		inventory: inv,
		notifier:  notifier,
		chain:     chain,
		pricing:   pricingCtx,
		observers: observers,
		logger:    log,
	}
}

// ProcessOrder creates, validates, prices and charges an order. On any
// failure the order is transitioned to cancelled, exactly one failure
// notification is emitted, and no further side effects happen: no stock
// is reserved and no loyalty points accrue past the failure point.
func (s *Service) ProcessOrder(
	customerName string,
	items []models.MenuItem,
	processor payment.Processor,
	specialInstructions string,
) (*models.Order, pricing.Quote, error) {
	requestID := logger.GenerateRequestID()

	order := s.manager.CreateOrder(customerName)
	for _, observer := range s.observers {
		order.Attach(observer)
	}
	for _, item := range items {
		order.AddItem(item)
	}
	if specialInstructions != "" {
		order.SetSpecialInstructions(specialInstructions)
	}

	if ok, reason := s.chain.Validate(order); !ok {
		s.fail(order, requestID, reason)
		return order, pricing.Quote{}, fmt.Errorf("%w: %s", ErrValidationFailed, reason)
	}

	if ok, missing := s.inventory.Available(order.Items()); !ok {
		reason := fmt.Sprintf("items unavailable: %v", missing)
		s.fail(order, requestID, reason)
		return order, pricing.Quote{}, fmt.Errorf("%w: %v", ErrItemsUnavailable, missing)
	}

	quote := s.pricing.Quote(order)

	if !processor.Process(quote.FinalPrice, customerName) {
		reason := fmt.Sprintf("payment of $%.2f via %s declined", quote.FinalPrice, processor.Name())
		s.fail(order, requestID, reason)
		return order, quote, fmt.Errorf("%w: %s", ErrPaymentFailed, processor.Name())
	}

	if err := s.inventory.Reserve(order.Items()); err != nil {
		s.fail(order, requestID, err.Error())
		return order, quote, fmt.Errorf("%w: %v", ErrItemsUnavailable, err)
	}

	s.setStatus(order, models.StatusConfirmed, requestID)
	s.logger.Info("order_processed", requestID, "Order confirmed", map[string]interface{}{
		"order_id":    order.ID(),
		"customer":    customerName,
		"total":       quote.OriginalPrice,
		"final_price": quote.FinalPrice,
		"strategy":    quote.Strategy,
		"payment":     processor.Name(),
	})
	s.notifier.Notify(fmt.Sprintf("Order #%d confirmed for %s! Total: $%.2f (%s)",
		order.ID(), customerName, quote.FinalPrice, processor.Name()))

	return order, quote, nil
}

// CancelOrder restores reserved stock, cancels the order and notifies
// the customer. Stock is only restored for orders that made it past
// confirmation; pending or already-terminal orders hold no reservation.
func (s *Service) CancelOrder(orderID int) error {
	order, err := s.manager.GetOrder(orderID)
	if err != nil {
		return err
	}
	requestID := logger.GenerateRequestID()

	status := order.Status()
	if status != models.StatusPending && !status.IsTerminal() {
		s.inventory.Restore(order.Items())
	}

	s.setStatus(order, models.StatusCancelled, requestID)
	s.notifier.Notify(fmt.Sprintf("Order #%d has been cancelled", orderID))
	return nil
}

// Summary is the roll-up of a day's orders.
type Summary struct {
	TotalOrders     int
	CompletedOrders int
	CancelledOrders int
	TotalRevenue    float64
}

func (s *Service) DailySummary() Summary {
	summary := Summary{TotalRevenue: s.manager.TotalRevenue()}
	for _, order := range s.manager.AllOrders() {
		summary.TotalOrders++
		switch order.Status() {
		case models.StatusDelivered:
			summary.CompletedOrders++
		case models.StatusCancelled:
			summary.CancelledOrders++
		}
	}
	return summary
}

// fail transitions the order to cancelled and emits exactly one failure
// notification.
func (s *Service) fail(order *models.Order, requestID, reason string) {
	s.logger.Info("order_failed", requestID, "Order processing failed", map[string]interface{}{
		"order_id": order.ID(),
		"reason":   reason,
	})
	s.setStatus(order, models.StatusCancelled, requestID)
	s.notifier.Notify(fmt.Sprintf("Order #%d failed: %s", order.ID(), reason))
}

// setStatus applies a transition and reports observer failures without
// letting them abort the flow.
func (s *Service) setStatus(order *models.Order, status models.OrderStatus, requestID string) {
	if err := order.SetStatus(status); err != nil {
		s.logger.Error("observer_failed", requestID, "Observer reported failure during status change", err,
			map[string]interface{}{
				"order_id":   order.ID(),
				"new_status": string(status),
			})
	}
}
