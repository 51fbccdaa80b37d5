package app

import "tutalink_backend/internal/email"

// MockEmailProvider is used for tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error { return nil }
func (m *MockEmailProvider) Close() error                  { return nil }
