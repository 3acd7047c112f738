package payment

import (
	"strings"
	"testing"
)

func TestCash(t *testing.T) {
	if !(Cash{}).Process(19.99, "Alice") {
		t.Fatal("cash payment should succeed")
	}
	if got := (Cash{}).Name(); got != "Cash" {
		t.Fatalf("name = %q", got)
	}
}

func TestCard_MasksNumber(t *testing.T) {
	card := NewCard("4111111111111234")
	if !card.Process(45.00, "Bob") {
		t.Fatal("card payment should succeed")
	}
	if got := card.Name(); got != "Credit Card (****1234)" {
		t.Fatalf("name = %q", got)
	}
}

func TestStripeAdapter(t *testing.T) {
	adapter := NewStripeAdapter("alice@example.com")

	if !adapter.Process(25.50, "Alice") {
		t.Fatal("stripe payment should succeed")
	}
	if adapter.Process(-1.00, "Alice") {
		t.Fatal("negative charge should fail")
	}
	if got := adapter.Name(); got != "Stripe (alice@example.com)" {
		t.Fatalf("name = %q", got)
	}
}

func TestStripeService_TransactionIDs(t *testing.T) {
	var service StripeService
	first := service.Charge("a@example.com", 1000, "order")
	second := service.Charge("a@example.com", 1000, "order")

	if !first.Success || !second.Success {
		t.Fatal("charges should succeed")
	}
	if first.TransactionID == second.TransactionID {
		t.Fatal("transaction ids must be unique")
	}
	if !strings.HasPrefix(first.TransactionID, "stripe_tx_") {
		t.Fatalf("unexpected transaction id %q", first.TransactionID)
	}
}

func TestPayPalAdapter(t *testing.T) {
	adapter := NewPayPalAdapter("bob@example.com")

	if !adapter.Process(12.00, "Bob") {
		t.Fatal("paypal payment should succeed")
	}
	if adapter.Process(-5.00, "Bob") {
		t.Fatal("negative payment should fail")
	}
	if got := adapter.Name(); got != "PayPal (bob@example.com)" {
		t.Fatalf("name = %q", got)
	}
}

func TestCryptoAdapter(t *testing.T) {
	adapter := NewCryptoAdapter("bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", 40000.0)

	if !adapter.Process(80.00, "Carol") {
		t.Fatal("crypto payment should succeed")
	}
	if got := adapter.Name(); got != "Cryptocurrency (bc1qxy2k...)" {
		t.Fatalf("name = %q", got)
	}

	empty := NewCryptoAdapter("", 0)
	if empty.Process(80.00, "Carol") {
		t.Fatal("payment to an empty wallet should fail")
	}
}
