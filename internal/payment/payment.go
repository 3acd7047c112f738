package payment

import (
	"fmt"
)

// Processor is the payment interface the ordering flow depends on.
// Process reports success or failure; callers must tolerate either.
type Processor interface {
	Process(amount float64, customerName string) bool
	Name() string
}

// Cash accepts any amount.
type Cash struct{}

func (Cash) Process(amount float64, customerName string) bool {
	return amount >= 0
}

func (Cash) Name() string {
	return "Cash"
}

// Card charges a stored card, identified by its last four digits only.
type Card struct {
	last4 string
}

func NewCard(cardNumber string) *Card {
	last4 := cardNumber
	if len(cardNumber) > 4 {
		last4 = cardNumber[len(cardNumber)-4:]
	}
	return &Card{last4: last4}
}

func (c *Card) Process(amount float64, customerName string) bool {
	return amount >= 0
}

func (c *Card) Name() string {
	return fmt.Sprintf("Credit Card (****%s)", c.last4)
}
