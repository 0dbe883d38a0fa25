package mocks

import (
	"context"

	"github.com/jd6186/interview-assignments/domain"
)

// MockUserService implements domain.UserService for testing
type MockUserService struct {
	ListFunc       func(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)
	CreateFunc     func(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	UpdateFunc     func(ctx context.Context, userID uint, patch domain.UserPatch) (*domain.User, error)
	DeleteFunc     func(ctx context.Context, userID uint, reason string) error
}

// NewMockUserService creates a new MockUserService with default behaviors
func NewMockUserService() *MockUserService {
	return &MockUserService{}
}

// List returns a page of users with the total count
func (m *MockUserService) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return []domain.User{}, 0, nil
}

// GetByEmail finds a user by login email
func (m *MockUserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// Create creates an account
func (m *MockUserService) Create(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return &domain.User{ID: 1, LoginEmail: input.LoginEmail}, nil
}

// Update applies a profile patch
func (m *MockUserService) Update(ctx context.Context, userID uint, patch domain.UserPatch) (*domain.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, userID, patch)
	}
	return &domain.User{ID: userID, Name: patch.Name, Gender: patch.Gender, Age: patch.Age, Phone: patch.Phone}, nil
}

// Delete removes an account
func (m *MockUserService) Delete(ctx context.Context, userID uint, reason string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, reason)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserService = (*MockUserService)(nil)
