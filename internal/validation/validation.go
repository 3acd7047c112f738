package validation

import (
	"fmt"
	"strings"

	"restaurant-orders/internal/config"
	"restaurant-orders/internal/models"
)

// ValidationError carries the field a check rejected and the reason.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Check is a single-purpose predicate over an order. A nil result means
// the check passed; otherwise the error is the human-readable reason.
type Check struct {
	Name string
	Fn   func(order *models.Order) error
}

// Chain evaluates checks strictly in order and stops at the first
// failure. Validation failure is an expected outcome, so the result is
// data rather than an error.
type Chain struct {
	checks []Check
}

// NewChain builds a chain from the given checks, evaluated in order.
func NewChain(checks ...Check) *Chain {
	return &Chain{checks: checks}
}

// Validate runs the chain against an order. It returns (false, reason)
// for the first failing check, or (true, success message) when every
// check passes.
func (c *Chain) Validate(order *models.Order) (bool, string) {
	for _, check := range c.checks {
		if err := check.Fn(order); err != nil {
			return false, err.Error()
		}
	}
	return true, "order validation successful"
}

// StandardChain is the full validation sequence: item count, customer
// info, minimum amount, inventory, business hours.
func StandardChain(cfg config.ValidationConfig) *Chain {
	return NewChain(
		ItemCount(),
		CustomerInfo(),
		MinimumAmount(cfg.MinimumAmount),
		Inventory(cfg.UnavailableItems),
		BusinessHours(cfg.BusinessHoursStart, cfg.BusinessHoursEnd),
	)
}

// ExpressChain is the shortened sequence used for express orders.
func ExpressChain() *Chain {
	return NewChain(
		ItemCount(),
		CustomerInfo(),
	)
}

// ItemCount fails for orders with no items.
func ItemCount() Check {
	return Check{
		Name: "item_count",
		Fn: func(order *models.Order) error {
			if order.ItemCount() == 0 {
				return ValidationError{Field: "items", Message: "order must contain at least one item"}
			}
			return nil
		},
	}
}

// CustomerInfo fails when the customer name is empty or whitespace-only.
func CustomerInfo() Check {
	return Check{
		Name: "customer_info",
		Fn: func(order *models.Order) error {
			if strings.TrimSpace(order.CustomerName()) == "" {
				return ValidationError{Field: "customer_name", Message: "customer name is required"}
			}
			return nil
		},
	}
}

// MinimumAmount fails when the order total is below the floor.
func MinimumAmount(minimum float64) Check {
	return Check{
		Name: "minimum_amount",
		Fn: func(order *models.Order) error {
			if total := order.Total(); total < minimum {
				return ValidationError{
					Field:   "total",
					Message: fmt.Sprintf("minimum order amount is $%.2f, current total is $%.2f", minimum, total),
				}
			}
			return nil
		},
	}
}

// Inventory fails when any item name appears in the unavailable set.
func Inventory(unavailable []string) Check {
	set := make(map[string]struct{}, len(unavailable))
	for _, name := range unavailable {
		set[name] = struct{}{}
	}
	return Check{
		Name: "inventory",
		Fn: func(order *models.Order) error {
			for _, item := range order.Items() {
				if _, ok := set[item.Name]; ok {
					return ValidationError{
						Field:   "items",
						Message: fmt.Sprintf("%q is currently unavailable", item.Name),
					}
				}
			}
			return nil
		},
	}
}

// BusinessHours fails when the order's creation hour falls outside the
// half-open window [start, end).
func BusinessHours(startHour, endHour int) Check {
	return Check{
		Name: "business_hours",
		Fn: func(order *models.Order) error {
			hour := order.CreatedAt().Hour()
			if hour < startHour || hour >= endHour {
				return ValidationError{
					Field:   "created_at",
					Message: fmt.Sprintf("orders accepted only between %d:00 and %d:00", startHour, endHour),
				}
			}
			return nil
		},
	}
}
