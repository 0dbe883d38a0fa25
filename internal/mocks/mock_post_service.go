package mocks

import (
	"context"

	"github.com/jd6186/interview-assignments/domain"
)

// MockPostService implements domain.PostService for testing
type MockPostService struct {
	ListFunc   func(ctx context.Context, limit, offset int) ([]domain.Post, error)
	GetFunc    func(ctx context.Context, id uint) (*domain.Post, error)
	CreateFunc func(ctx context.Context, userID uint, input domain.PostInput) (*domain.Post, error)
	UpdateFunc func(ctx context.Context, id, userID uint, input domain.PostInput) (*domain.Post, error)
}

// NewMockPostService creates a new MockPostService with default behaviors
func NewMockPostService() *MockPostService {
	return &MockPostService{}
}

// List returns a page of posts
func (m *MockPostService) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	return []domain.Post{}, nil
}

// Get finds a post by id
func (m *MockPostService) Get(ctx context.Context, id uint) (*domain.Post, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrPostNotFound
}

// Create creates a post owned by userID
func (m *MockPostService) Create(ctx context.Context, userID uint, input domain.PostInput) (*domain.Post, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, input)
	}
	return &domain.Post{ID: 1, UserID: userID, Title: input.Title, Content: input.Content}, nil
}

// Update updates a post owned by userID
func (m *MockPostService) Update(ctx context.Context, id, userID uint, input domain.PostInput) (*domain.Post, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, userID, input)
	}
	return &domain.Post{ID: id, UserID: userID, Title: input.Title, Content: input.Content}, nil
}

// Compile-time interface compliance verification
var _ domain.PostService = (*MockPostService)(nil)
