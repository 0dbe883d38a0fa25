package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jd6186/interview-assignments/domain"
)

// PostServiceImpl implements domain.PostService
type PostServiceImpl struct {
	postRepo domain.PostRepository
}

// NewPostService creates a new post service
func NewPostService(postRepo domain.PostRepository) domain.PostService {
	return &PostServiceImpl{postRepo: postRepo}
}

// List implements domain.PostService
func (s *PostServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	return s.postRepo.List(ctx, limit, offset)
}

// Get implements domain.PostService
func (s *PostServiceImpl) Get(ctx context.Context, id uint) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// Create implements domain.PostService. The owner is always the
// authenticated subject, never a client-supplied id.
func (s *PostServiceImpl) Create(ctx context.Context, userID uint, input domain.PostInput) (*domain.Post, error) {
	post := &domain.Post{
		UserID:    userID,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Update implements domain.PostService. Only the owner can update; a post
// owned by someone else is indistinguishable from an absent one.
func (s *PostServiceImpl) Update(ctx context.Context, id, userID uint, input domain.PostInput) (*domain.Post, error) {
	post, err := s.postRepo.FindOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	post.Title = input.Title
	post.Content = input.Content
	post.UpdatedAt = time.Now().UTC()

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}
