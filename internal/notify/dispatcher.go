package notify

import (
	"sync"

	"catalog-service/prometheus"

	"go.uber.org/zap"
)

// Dispatcher decouples notification delivery from the request path. Dispatch
// enqueues and returns immediately; a single consumer goroutine drains the
// queue and swallows Notifier failures after logging them. A write that has
// already succeeded is never reported as failed because its notification was
// not delivered.
type Dispatcher struct {
	notifier Notifier
	queue    chan Message
	log      *zap.Logger
	wg       sync.WaitGroup
}

func NewDispatcher(notifier Notifier, queueSize int, log *zap.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	return &Dispatcher{
		notifier: notifier,
		queue:    make(chan Message, queueSize),
		log:      log,
	}
}

// Start launches the consumer goroutine
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for msg := range d.queue {
			if err := d.notifier.Send(msg); err != nil {
				prometheus.RecordNotificationFailed()
				d.log.Warn("notification delivery failed",
					zap.String("subject", msg.Subject),
					zap.Error(err))
				continue
			}
			prometheus.RecordNotificationSent()
			d.log.Info("notification delivered", zap.String("subject", msg.Subject))
		}
	}()
}

// Dispatch enqueues a message without blocking. When the queue is full the
// message is dropped and logged; notifications are best-effort.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("subject", msg.Subject))
	}
}

// Stop closes the queue and waits for in-flight deliveries to finish
func (d *Dispatcher) Stop() {
	close(d.queue)
	d.wg.Wait()
}
