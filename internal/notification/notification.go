package notification

import (
	"fmt"
	"sync"

	"restaurant-orders/internal/logger"
)

// Notifier delivers a human-readable message through some channel.
// Delivery is fire-and-forget; callers tolerate silent failure.
type Notifier interface {
	Notify(message string)
}

// ConsoleNotifier prints notifications to stdout and mirrors them as
// structured log entries.
type ConsoleNotifier struct {
	logger *logger.Logger
}

func NewConsoleNotifier(log *logger.Logger) *ConsoleNotifier {
	return &ConsoleNotifier{logger: log}
}

func (n *ConsoleNotifier) Notify(message string) {
	fmt.Println(message)
	if n.logger != nil {
		n.logger.Info("notification_displayed", "", message, nil)
	}
}

// EmailNotifier simulates an email channel by recording sent messages.
type EmailNotifier struct {
	address string

	mu   sync.Mutex
	sent []string
}

func NewEmailNotifier(address string) *EmailNotifier {
	return &EmailNotifier{address: address}
}

func (n *EmailNotifier) Notify(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, message)
}

func (n *EmailNotifier) Address() string {
	return n.address
}

// Sent returns the messages delivered so far, oldest first.
func (n *EmailNotifier) Sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.sent))
	copy(out, n.sent)
	return out
}
