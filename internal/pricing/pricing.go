package pricing

import (
	"fmt"
	"sync"
	"time"

	"restaurant-orders/internal/models"
)

// Strategy computes a final price for an order. Implementations are pure:
// they never mutate the order and report nothing but the price.
type Strategy interface {
	Price(order *models.Order) float64
	Description() string
}

// Regular applies no discount.
type Regular struct{}

func (Regular) Price(order *models.Order) float64 {
	return order.Total()
}

func (Regular) Description() string {
	return "Regular Pricing (No discounts)"
}

// HappyHour discounts orders while the current wall-clock hour falls in
// the half-open window [startHour, endHour). The order's creation time
// is irrelevant; only the moment of pricing counts.
type HappyHour struct {
	discount  float64
	startHour int
	endHour   int
	now       func() time.Time
}

func NewHappyHour(discountPercent float64, startHour, endHour int) *HappyHour {
	return &HappyHour{
		discount:  discountPercent,
		startHour: startHour,
		endHour:   endHour,
		now:       time.Now,
	}
}

func (h *HappyHour) Price(order *models.Order) float64 {
	if !h.Active() {
		return order.Total()
	}
	return order.Total() * (1 - h.discount/100)
}

// Active reports whether the happy hour window currently applies.
func (h *HappyHour) Active() bool {
	hour := h.now().Hour()
	return hour >= h.startHour && hour < h.endHour
}

func (h *HappyHour) Description() string {
	return fmt.Sprintf("Happy Hour Pricing (%.0f%% off %d:00-%d:00)", h.discount, h.startHour, h.endHour)
}

// LoyaltyDiscount discounts orders for customers whose externally
// tracked point balance meets the threshold.
type LoyaltyDiscount struct {
	threshold int
	discount  float64
	points    func(customerName string) int
}

// NewLoyaltyDiscount wires the strategy to a point-balance lookup,
// typically the loyalty observer's Points method.
func NewLoyaltyDiscount(pointsThreshold int, discountPercent float64, points func(string) int) *LoyaltyDiscount {
	return &LoyaltyDiscount{threshold: pointsThreshold, discount: discountPercent, points: points}
}

func (l *LoyaltyDiscount) Price(order *models.Order) float64 {
	if l.points(order.CustomerName()) < l.threshold {
		return order.Total()
	}
	return order.Total() * (1 - l.discount/100)
}

func (l *LoyaltyDiscount) Description() string {
	return fmt.Sprintf("Loyalty Discount (%.0f%% off for %d+ points)", l.discount, l.threshold)
}

// Tier is one rung of the bulk-order discount table.
type Tier struct {
	MinItems int
	Discount float64
}

// BulkOrder applies the highest matching tier from a table evaluated
// highest-threshold-first; the first match wins.
type BulkOrder struct {
	tiers []Tier
}

// DefaultBulkTiers is the standard table: 10+ items 15%, 5+ 10%, 3+ 5%.
func DefaultBulkTiers() []Tier {
	return []Tier{
		{MinItems: 10, Discount: 15.0},
		{MinItems: 5, Discount: 10.0},
		{MinItems: 3, Discount: 5.0},
	}
}

// NewBulkOrder builds the strategy from a descending tier table, or the
// default table when none is given.
func NewBulkOrder(tiers ...Tier) *BulkOrder {
	if len(tiers) == 0 {
		tiers = DefaultBulkTiers()
	}
	return &BulkOrder{tiers: tiers}
}

func (b *BulkOrder) Price(order *models.Order) float64 {
	count := order.ItemCount()
	for _, tier := range b.tiers {
		if count >= tier.MinItems {
			return order.Total() * (1 - tier.Discount/100)
		}
	}
	return order.Total()
}

func (b *BulkOrder) Description() string {
	return "Bulk Order Pricing (5%/10%/15% off for 3+/5+/10+ items)"
}

// Seasonal applies a flat percentage discount to orders meeting a
// minimum total.
type Seasonal struct {
	name     string
	discount float64
	minOrder float64
}

func NewSeasonal(name string, discountPercent, minOrder float64) *Seasonal {
	return &Seasonal{name: name, discount: discountPercent, minOrder: minOrder}
}

func (s *Seasonal) Price(order *models.Order) float64 {
	if order.Total() < s.minOrder {
		return order.Total()
	}
	return order.Total() * (1 - s.discount/100)
}

func (s *Seasonal) Description() string {
	if s.minOrder > 0 {
		return fmt.Sprintf("%s - %.0f%% off (min $%.2f)", s.name, s.discount, s.minOrder)
	}
	return fmt.Sprintf("%s - %.0f%% off", s.name, s.discount)
}

// Combined evaluates every member strategy and returns the lowest
// resulting price, so the customer always gets the best discount.
type Combined struct {
	strategies []Strategy
}

func NewCombined(strategies ...Strategy) *Combined {
	return &Combined{strategies: strategies}
}

func (c *Combined) Price(order *models.Order) float64 {
	best := order.Total()
	for _, strategy := range c.strategies {
		if price := strategy.Price(order); price < best {
			best = price
		}
	}
	return best
}

// BestStrategy reports which member strategy yields the lowest price.
// Ties go to the earlier strategy.
func (c *Combined) BestStrategy(order *models.Order) Strategy {
	var best Strategy
	bestPrice := 0.0
	for _, strategy := range c.strategies {
		price := strategy.Price(order)
		if best == nil || price < bestPrice {
			best, bestPrice = strategy, price
		}
	}
	return best
}

func (c *Combined) Description() string {
	return "Combined Pricing (Best available discount)"
}

// Quote is the detailed outcome of pricing one order.
type Quote struct {
	OriginalPrice   float64
	FinalPrice      float64
	Discount        float64
	DiscountPercent float64
	Strategy        string
}

// Context holds the currently selected strategy; it can be swapped at
// any time, including between quotes for the same order.
type Context struct {
	mu       sync.RWMutex
	strategy Strategy
}

// NewContext creates a context, defaulting to regular pricing when no
// strategy is given.
func NewContext(strategy Strategy) *Context {
	if strategy == nil {
		strategy = Regular{}
	}
	return &Context{strategy: strategy}
}

// SetStrategy swaps the strategy used for subsequent quotes.
func (c *Context) SetStrategy(strategy Strategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.strategy = strategy
}

// Strategy returns the currently selected strategy.
func (c *Context) Strategy() Strategy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.strategy
}

// Quote computes the effect of the current strategy on an order. The
// discount percentage is 0 for a zero-total order.
func (c *Context) Quote(order *models.Order) Quote {
	strategy := c.Strategy()

	original := order.Total()
	final := strategy.Price(order)
	discount := original - final

	percent := 0.0
	if original > 0 {
		percent = discount / original * 100
	}

	return Quote{
		OriginalPrice:   original,
		FinalPrice:      final,
		Discount:        discount,
		DiscountPercent: percent,
		Strategy:        strategy.Description(),
	}
}
