package email

// Message is a plain HTML email.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Provider sends outbound mail. Callers treat sending as best-effort:
// failures are logged, never surfaced to the HTTP client.
type Provider interface {
	Send(msg *Message) error
	Close() error
}
