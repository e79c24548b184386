package email

import "github.com/Xae97/TaskFundi/internal/logger"

// MockProvider logs outbound mail instead of delivering it. Used for local
// development and tests; no SMTP transport exists in this deployment.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (m *MockProvider) Send(email *Email) error {
	logger.Info("mock email send", "to", email.To, "subject", email.Subject)
	return nil
}

func (m *MockProvider) SendPasswordReset(to string, token string) error {
	logger.Info("mock password reset email", "to", to)
	return nil
}

func (m *MockProvider) Close() error { return nil }
