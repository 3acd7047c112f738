package payment

import (
	"fmt"

	"github.com/google/uuid"
)

// The gateways below simulate third-party payment services, each with
// its own incompatible call shape. The adapters translate them onto the
// Processor interface.

// StripeService charges integer cents against a customer email.
type StripeService struct{}

type StripeCharge struct {
	Success       bool
	TransactionID string
}

func (StripeService) Charge(customerEmail string, amountCents int, description string) StripeCharge {
	if amountCents < 0 {
		return StripeCharge{Success: false}
	}
	return StripeCharge{
		Success:       true,
		TransactionID: "stripe_tx_" + uuid.NewString(),
	}
}

func (StripeService) Refund(transactionID string) bool {
	return transactionID != ""
}

// PayPalService takes dollar amounts and returns a transaction id string,
// empty on failure.
type PayPalService struct{}

func (PayPalService) MakePayment(paypalEmail string, dollarAmount float64, note string) string {
	if dollarAmount < 0 {
		return ""
	}
	return "PAYPAL_TXN_" + uuid.NewString()
}

func (PayPalService) CancelPayment(txnID string) bool {
	return txnID != ""
}

// CryptoGateway transfers a BTC amount to a wallet address.
type CryptoGateway struct{}

func (CryptoGateway) SendPayment(walletAddress string, btcAmount float64) bool {
	return walletAddress != "" && btcAmount >= 0
}

// StripeAdapter adapts StripeService to the Processor interface,
// converting dollars to cents.
type StripeAdapter struct {
	service       StripeService
	customerEmail string
}

func NewStripeAdapter(customerEmail string) *StripeAdapter {
	return &StripeAdapter{customerEmail: customerEmail}
}

func (a *StripeAdapter) Process(amount float64, customerName string) bool {
	amountCents := int(amount * 100)
	description := fmt.Sprintf("Restaurant order for %s", customerName)
	return a.service.Charge(a.customerEmail, amountCents, description).Success
}

func (a *StripeAdapter) Name() string {
	return fmt.Sprintf("Stripe (%s)", a.customerEmail)
}

// PayPalAdapter adapts PayPalService to the Processor interface.
type PayPalAdapter struct {
	service     PayPalService
	paypalEmail string
}

func NewPayPalAdapter(paypalEmail string) *PayPalAdapter {
	return &PayPalAdapter{paypalEmail: paypalEmail}
}

func (a *PayPalAdapter) Process(amount float64, customerName string) bool {
	note := fmt.Sprintf("Restaurant order for %s", customerName)
	return a.service.MakePayment(a.paypalEmail, amount, note) != ""
}

func (a *PayPalAdapter) Name() string {
	return fmt.Sprintf("PayPal (%s)", a.paypalEmail)
}

// CryptoAdapter adapts CryptoGateway to the Processor interface,
// converting dollars to BTC at a fixed rate.
type CryptoAdapter struct {
	gateway       CryptoGateway
	walletAddress string
	btcUSDRate    float64
}

func NewCryptoAdapter(walletAddress string, btcUSDRate float64) *CryptoAdapter {
	if btcUSDRate <= 0 {
		btcUSDRate = 40000.0
	}
	return &CryptoAdapter{walletAddress: walletAddress, btcUSDRate: btcUSDRate}
}

func (a *CryptoAdapter) Process(amount float64, customerName string) bool {
	btcAmount := amount / a.btcUSDRate
	return a.gateway.SendPayment(a.walletAddress, btcAmount)
}

func (a *CryptoAdapter) Name() string {
	wallet := a.walletAddress
	if len(wallet) > 8 {
		wallet = wallet[:8] + "..."
	}
	return fmt.Sprintf("Cryptocurrency (%s)", wallet)
}
