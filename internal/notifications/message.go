package notifications

import "context"

// Template keys understood by the mail worker. Each key selects the email
// template rendered for the recipient.
const (
	TemplateTechnologyOrderReceived  = "technology-order"
	TemplateTechnologyOrderClosed    = "technology-order-closed"
	TemplateTechnologyOrderCancelled = "technology-order-cancelled"
	TemplateServiceRequested         = "service-requested"
)

// Message is a single email notification to be delivered asynchronously.
// Payload carries template variables and is marshaled as-is onto the queue.
type Message struct {
	To       string         `json:"to"`
	ToName   string         `json:"to_name"`
	Subject  string         `json:"subject"`
	Template string         `json:"template"`
	Payload  map[string]any `json:"payload"`
}

// Queue is the transport that carries notification messages to the mail
// worker. Implementations must be safe for concurrent use.
type Queue interface {
	Enqueue(ctx context.Context, msg Message) error
}
