package port

import "context"

// Message is one outbound transactional email. HTML is the full body; the
// provider derives any plain-text alternative itself.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends a single email through the provider. Implementations return
// an error on any non-success provider response; callers decide whether to
// swallow (receipt path) or track it (campaign path).
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
