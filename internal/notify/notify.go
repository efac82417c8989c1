package notify

// Message is a human-readable notification summary handed to the Notifier
type Message struct {
	Subject string
	Body    string
}

// Notifier delivers a notification to the outside world. Delivery is
// best-effort; callers must never couple a write's outcome to it.
type Notifier interface {
	Send(msg Message) error
}
