package mocks

import (
	"context"

	"github.com/jd6186/interview-assignments/domain"
)

// MockPostRepository implements domain.PostRepository for testing
type MockPostRepository struct {
	CreateFunc    func(ctx context.Context, post *domain.Post) error
	FindByIDFunc  func(ctx context.Context, id uint) (*domain.Post, error)
	FindOwnedFunc func(ctx context.Context, id, userID uint) (*domain.Post, error)
	ListFunc      func(ctx context.Context, limit, offset int) ([]domain.Post, error)
	UpdateFunc    func(ctx context.Context, post *domain.Post) error
}

// NewMockPostRepository creates a new MockPostRepository with default behaviors
func NewMockPostRepository() *MockPostRepository {
	return &MockPostRepository{}
}

// Create creates a post
func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	post.ID = 1
	return nil
}

// FindByID finds a post by id
func (m *MockPostRepository) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

// FindOwned finds a post by id scoped to its owner
func (m *MockPostRepository) FindOwned(ctx context.Context, id, userID uint) (*domain.Post, error) {
	if m.FindOwnedFunc != nil {
		return m.FindOwnedFunc(ctx, id, userID)
	}
	return nil, domain.ErrPostNotFound
}

// List returns a page of posts
func (m *MockPostRepository) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return []domain.Post{}, nil
}

// Update persists the post
func (m *MockPostRepository) Update(ctx context.Context, post *domain.Post) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, post)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.PostRepository = (*MockPostRepository)(nil)
