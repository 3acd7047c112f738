package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"restaurant-orders/internal/models"
)

func orderWithItems(t *testing.T, customer string, prices ...float64) *models.Order {
	t.Helper()
	order := models.NewOrder(1, customer)
	for _, price := range prices {
		order.AddItem(models.MenuItem{Name: "Item", Price: price, Category: models.CategoryMainCourse})
	}
	return order
}

func repeated(price float64, n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = price
	}
	return prices
}

func atHour(hour int) func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.March, 10, hour, 15, 0, 0, time.Local)
	}
}

func TestRegular_Identity(t *testing.T) {
	order := orderWithItems(t, "Alice", 12.50, 7.50)
	assert.Equal(t, 20.00, Regular{}.Price(order))
}

func TestHappyHour_Window(t *testing.T) {
	order := orderWithItems(t, "Alice", 100.00)

	tests := []struct {
		name string
		hour int
		want float64
	}{
		{name: "before window", hour: 13, want: 100.00},
		{name: "window start inclusive", hour: 14, want: 80.00},
		{name: "inside window", hour: 16, want: 80.00},
		{name: "window end exclusive", hour: 17, want: 100.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := NewHappyHour(20.0, 14, 17)
			strategy.now = atHour(tt.hour)
			assert.InDelta(t, tt.want, strategy.Price(order), 1e-9)
		})
	}
}

func TestLoyaltyDiscount_Threshold(t *testing.T) {
	balances := map[string]int{"Alice": 150, "Bob": 99}
	strategy := NewLoyaltyDiscount(100, 10.0, func(name string) int { return balances[name] })

	assert.InDelta(t, 90.00, strategy.Price(orderWithItems(t, "Alice", 100.00)), 1e-9)
	assert.InDelta(t, 100.00, strategy.Price(orderWithItems(t, "Bob", 100.00)), 1e-9)
	assert.InDelta(t, 100.00, strategy.Price(orderWithItems(t, "Stranger", 100.00)), 1e-9)
}

func TestBulkOrder_TierBoundaries(t *testing.T) {
	strategy := NewBulkOrder()

	tests := []struct {
		items int
		want  float64 // final price for items * $10
	}{
		{items: 1, want: 10.00},
		{items: 2, want: 20.00},
		{items: 3, want: 28.50},  // 5% tier
		{items: 4, want: 38.00},  // still 5%
		{items: 5, want: 45.00},  // 10% tier, not 5% or 15%
		{items: 9, want: 81.00},  // still 10%
		{items: 10, want: 85.00}, // 15% tier
		{items: 12, want: 102.00},
	}

	for _, tt := range tests {
		order := orderWithItems(t, "Alice", repeated(10.00, tt.items)...)
		assert.InDelta(t, tt.want, strategy.Price(order), 1e-9, "items=%d", tt.items)
	}
}

func TestSeasonal_MinimumOrder(t *testing.T) {
	strategy := NewSeasonal("Winter Special", 15.0, 30.00)

	assert.InDelta(t, 25.00, strategy.Price(orderWithItems(t, "Alice", 25.00)), 1e-9)
	assert.InDelta(t, 25.50, strategy.Price(orderWithItems(t, "Alice", 30.00)), 1e-9)
}

type fixedStrategy struct {
	price float64
	desc  string
}

func (f fixedStrategy) Price(order *models.Order) float64 { return f.price }
func (f fixedStrategy) Description() string               { return f.desc }

func TestCombined_PicksLowestPrice(t *testing.T) {
	combined := NewCombined(
		fixedStrategy{price: 90, desc: "ninety"},
		fixedStrategy{price: 80, desc: "eighty"},
		fixedStrategy{price: 95, desc: "ninety-five"},
	)
	order := orderWithItems(t, "Alice", 100.00)

	assert.Equal(t, 80.0, combined.Price(order))
	assert.Equal(t, "eighty", combined.BestStrategy(order).Description())
}

func TestCombined_TieGoesToFirst(t *testing.T) {
	combined := NewCombined(
		fixedStrategy{price: 80, desc: "first"},
		fixedStrategy{price: 80, desc: "second"},
	)
	order := orderWithItems(t, "Alice", 100.00)

	assert.Equal(t, "first", combined.BestStrategy(order).Description())
}

func TestContext_QuoteAndSwap(t *testing.T) {
	order := orderWithItems(t, "Alice", 100.00)
	ctx := NewContext(nil)

	quote := ctx.Quote(order)
	assert.Equal(t, 100.00, quote.OriginalPrice)
	assert.Equal(t, 100.00, quote.FinalPrice)
	assert.Equal(t, 0.00, quote.Discount)
	assert.Equal(t, "Regular Pricing (No discounts)", quote.Strategy)

	ctx.SetStrategy(NewSeasonal("Flash Sale", 25.0, 0))
	quote = ctx.Quote(order)
	assert.InDelta(t, 75.00, quote.FinalPrice, 1e-9)
	assert.InDelta(t, 25.00, quote.Discount, 1e-9)
	assert.InDelta(t, 25.0, quote.DiscountPercent, 1e-9)
}

func TestContext_ZeroTotalQuote(t *testing.T) {
	order := models.NewOrder(2, "Alice")
	ctx := NewContext(NewSeasonal("Flash Sale", 25.0, 0))

	quote := ctx.Quote(order)
	assert.Equal(t, 0.0, quote.OriginalPrice)
	assert.Equal(t, 0.0, quote.FinalPrice)
	assert.Equal(t, 0.0, quote.DiscountPercent, "no division by zero for empty orders")
}
