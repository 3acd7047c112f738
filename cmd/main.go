package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"restaurant-orders/internal/config"
	"restaurant-orders/internal/inventory"
	"restaurant-orders/internal/logger"
	"restaurant-orders/internal/menu"
	"restaurant-orders/internal/models"
	"restaurant-orders/internal/notification"
	"restaurant-orders/internal/observers"
	"restaurant-orders/internal/payment"
	"restaurant-orders/internal/pricing"
	"restaurant-orders/internal/services/ordering"
	"restaurant-orders/internal/validation"
)

func main() {
	var (
		configPath = flag.String("config", "config.yaml", "Path to config file")
		cuisine    = flag.String("cuisine", "american", "Cuisine for the demonstration menu (american, italian, asian)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	log := logger.New("restaurant-orders")
	requestID := logger.GenerateRequestID()
	log.Info("service_started", requestID, "Restaurant order demonstration starting", map[string]interface{}{
		"cuisine": *cuisine,
	})

	if err := run(cfg, log, *cuisine); err != nil {
		log.Error("demo_failed", requestID, "Demonstration aborted", err, nil)
		os.Exit(1)
	}

	log.Info("service_stopped", requestID, "Demonstration finished", nil)
}

func run(cfg *config.Config, log *logger.Logger, cuisine string) error {
	factory, err := menu.ForCuisine(cuisine)
	if err != nil {
		return err
	}

	// One registry for the whole process, injected everywhere.
	manager := ordering.NewManager(log)
	inv := inventory.New()
	console := notification.NewConsoleNotifier(log)

	customerNotifs := observers.NewCustomerNotification("SMS", console)
	kitchen := observers.NewKitchenDisplay()
	analytics := observers.NewAnalytics()
	delivery := observers.NewDeliveryCoordinator()
	loyalty := observers.NewLoyalty()

	chain := validation.StandardChain(cfg.Validation)
	priceCtx := pricing.NewContext(nil)

	service := ordering.NewService(manager, inv, console, chain, priceCtx, log,
		customerNotifs, kitchen, analytics, delivery, loyalty)

	mainCourse := factory.CreateMainCourse()
	side := factory.CreateSideDish()
	beverage := factory.CreateBeverage()
	dessert := factory.CreateDessert()

	for _, item := range []models.MenuItem{mainCourse, side, beverage, dessert} {
		inv.SetStock(item.Name, 10)
	}

	fmt.Println("=== Processing a regular order ===")
	loaded := menu.ApplyExtras(mainCourse, menu.ExtraCheese, menu.Bacon)
	order, quote, err := service.ProcessOrder("Alice",
		[]models.MenuItem{loaded, side, beverage}, payment.Cash{}, "no onions")
	if err != nil {
		return err
	}
	fmt.Println(order)
	fmt.Printf("Priced with %s: $%.2f -> $%.2f\n", quote.Strategy, quote.OriginalPrice, quote.FinalPrice)

	fmt.Println("\n=== Driving the order through the kitchen ===")
	for _, status := range []models.OrderStatus{
		models.StatusPreparing, models.StatusReady, models.StatusDelivered,
	} {
		if err := order.SetStatus(status); err != nil {
			log.Error("status_change_failed", "", "Observer failure during transition", err, nil)
		}
		fmt.Printf("Order #%d is now %s (kitchen queue: %v)\n", order.ID(), status, kitchen.ActiveOrders())
	}
	if driver, ok := delivery.AssignedDriver(order.ID()); ok {
		fmt.Printf("Driver %s is on the way\n", driver)
	}
	fmt.Printf("%s now has %d loyalty points\n", order.CustomerName(), loyalty.Points(order.CustomerName()))

	fmt.Println("\n=== Comparing pricing strategies ===")
	bulk := manager.CreateOrder("Bob")
	for i := 0; i < 5; i++ {
		bulk.AddItem(dessert)
	}
	strategies := []pricing.Strategy{
		pricing.Regular{},
		pricing.NewHappyHour(cfg.Pricing.HappyHourDiscount, cfg.Pricing.HappyHourStart, cfg.Pricing.HappyHourEnd),
		pricing.NewLoyaltyDiscount(cfg.Pricing.LoyaltyThreshold, cfg.Pricing.LoyaltyDiscount, loyalty.Points),
		pricing.NewBulkOrder(),
		pricing.NewSeasonal(cfg.Pricing.SeasonalPromotion, cfg.Pricing.SeasonalDiscount, cfg.Pricing.SeasonalMinOrder),
	}
	for _, strategy := range strategies {
		priceCtx.SetStrategy(strategy)
		q := priceCtx.Quote(bulk)
		fmt.Printf("%-55s $%.2f (save $%.2f)\n", q.Strategy, q.FinalPrice, q.Discount)
	}
	priceCtx.SetStrategy(pricing.NewCombined(strategies...))
	best := priceCtx.Quote(bulk)
	fmt.Printf("%-55s $%.2f (save $%.2f)\n", best.Strategy, best.FinalPrice, best.Discount)

	fmt.Println("\n=== Paying through a third-party gateway ===")
	stripe := payment.NewStripeAdapter("alice@example.com")
	gatewayOrder, gatewayQuote, err := service.ProcessOrder("Alice",
		[]models.MenuItem{dessert, beverage}, stripe, "")
	if err != nil {
		return err
	}
	fmt.Printf("Order #%d paid via %s: $%.2f\n", gatewayOrder.ID(), stripe.Name(), gatewayQuote.FinalPrice)

	fmt.Println("\n=== Cloning menu prototypes ===")
	prototypes := menu.DefaultPrototypeRegistry()
	special, err := prototypes.CloneWith("deluxe_burger",
		menu.WithName("Midnight Deluxe"), menu.WithPrice(16.49))
	if err != nil {
		return err
	}
	fmt.Println(special)

	fmt.Println("\n=== An out-of-stock order ===")
	inv.SetStock(dessert.Name, 0)
	_, _, err = service.ProcessOrder("Mallory", []models.MenuItem{dessert}, payment.NewCard("4111111111111111"), "")
	if err != nil {
		fmt.Printf("Order rejected: %v\n", err)
	}

	fmt.Println("\n=== Daily summary ===")
	summary := service.DailySummary()
	fmt.Printf("Orders: %d  Completed: %d  Cancelled: %d  Revenue: $%.2f\n",
		summary.TotalOrders, summary.CompletedOrders, summary.CancelledOrders, summary.TotalRevenue)
	stats := analytics.GetSummary()
	fmt.Printf("Status changes: %d  Completion rate: %.0f%%\n",
		stats.TotalStatusChanges, stats.CompletionRate*100)

	return nil
}
