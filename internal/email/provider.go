package email

// Email is an outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider sends email on behalf of the application.
type Provider interface {
	Send(email *Email) error

	// SendPasswordReset sends the reset instructions for an account.
	SendPasswordReset(to string, token string) error

	Close() error
}
