// Package notify delivers operator notifications. Every failure is logged and
// swallowed; a notification never blocks or fails the operation that triggered it.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Message is one operator notification
type Message struct {
	Subject string
	HTML    string
	// Text is the plain rendition used by chat channels
	Text string
	// ReplyTo is the customer address, when known
	ReplyTo string
}

// Notifier delivers a message to the operator
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// Multi fans a message out to every notifier and joins their errors
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg Message) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, msg); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop discards messages
type Nop struct{}

func (Nop) Notify(context.Context, Message) error { return nil }

// Dispatcher sends messages in the background
type Dispatcher struct {
	notifier Notifier
	timeout  time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewDispatcher wraps a notifier for fire-and-forget delivery
func NewDispatcher(notifier Notifier, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Dispatcher{
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
	}
}

// Send queues the message and returns immediately. Messages sent after Close are dropped.
func (d *Dispatcher) Send(msg Message) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("notification dropped after shutdown", zap.String("subject", msg.Subject))
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.notifier.Notify(ctx, msg); err != nil {
			d.logger.Warn("failed to deliver notification",
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			return
		}
		d.logger.Debug("notification delivered", zap.String("subject", msg.Subject))
	}()
}

// Close stops accepting messages and waits for in-flight deliveries
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.wg.Wait()
}
