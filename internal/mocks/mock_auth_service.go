package mocks

import (
	"context"

	"github.com/jd6186/interview-assignments/domain"
)

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Register creates an account
func (m *MockAuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, input)
	}
	return &domain.User{
		ID:         1,
		LoginEmail: input.LoginEmail,
		Name:       input.Name,
		Gender:     input.Gender,
		Age:        input.Age,
		Phone:      input.Phone,
	}, nil
}

// Login authenticates credentials and mints a token
func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return "token_1", nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*MockAuthService)(nil)
