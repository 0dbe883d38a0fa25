package mocks

import (
	"context"

	"github.com/jd6186/interview-assignments/domain"
)

// MockUserRepository implements domain.UserRepository for testing
type MockUserRepository struct {
	CreateFunc          func(ctx context.Context, user *domain.User) error
	FindByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	FindByIDFunc        func(ctx context.Context, id uint) (*domain.User, error)
	ListFunc            func(ctx context.Context, limit, offset int) ([]domain.User, int64, error)
	UpdateWithAuditFunc func(ctx context.Context, user *domain.User, changes string) error
	DeleteWithAuditFunc func(ctx context.Context, user *domain.User, reason string) error
}

// NewMockUserRepository creates a new MockUserRepository with default behaviors
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{}
}

// Create creates a user
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

// FindByEmail finds a user by login email
func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, domain.ErrUserNotFound
}

// FindByID finds a user by id
func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// List returns a page of users with the total count
func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return []domain.User{}, 0, nil
}

// UpdateWithAudit persists the user and its audit entry
func (m *MockUserRepository) UpdateWithAudit(ctx context.Context, user *domain.User, changes string) error {
	if m.UpdateWithAuditFunc != nil {
		return m.UpdateWithAuditFunc(ctx, user, changes)
	}
	return nil
}

// DeleteWithAudit removes the user together with its audit entry
func (m *MockUserRepository) DeleteWithAudit(ctx context.Context, user *domain.User, reason string) error {
	if m.DeleteWithAuditFunc != nil {
		return m.DeleteWithAuditFunc(ctx, user, reason)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.UserRepository = (*MockUserRepository)(nil)
