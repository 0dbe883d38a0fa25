package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jd6186/interview-assignments/domain"
)

// UserServiceImpl implements domain.UserService
type UserServiceImpl struct {
	userRepo domain.UserRepository
	authSvc  domain.AuthService
}

// NewUserService creates a new user service
func NewUserService(userRepo domain.UserRepository, authSvc domain.AuthService) domain.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		authSvc:  authSvc,
	}
}

// List implements domain.UserService
func (s *UserServiceImpl) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// GetByEmail implements domain.UserService
func (s *UserServiceImpl) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

// Create implements domain.UserService. Same conflict rule as registration.
func (s *UserServiceImpl) Create(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	return s.authSvc.Register(ctx, input)
}

// Update implements domain.UserService. Every field whose new value differs
// from the stored value contributes one "field: old -> new" fragment; the
// fragments form a single audit entry, and a no-op patch writes none.
func (s *UserServiceImpl) Update(ctx context.Context, userID uint, patch domain.UserPatch) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var changes []string
	if patch.Name != user.Name {
		changes = append(changes, fmt.Sprintf("name: %s -> %s", user.Name, patch.Name))
		user.Name = patch.Name
	}
	if patch.Gender != user.Gender {
		changes = append(changes, fmt.Sprintf("gender: %s -> %s", user.Gender, patch.Gender))
		user.Gender = patch.Gender
	}
	if patch.Age != user.Age {
		changes = append(changes, fmt.Sprintf("age: %s -> %s", strconv.Itoa(user.Age), strconv.Itoa(patch.Age)))
		user.Age = patch.Age
	}
	if patch.Phone != user.Phone {
		changes = append(changes, fmt.Sprintf("phone: %s -> %s", user.Phone, patch.Phone))
		user.Phone = patch.Phone
	}

	if err := s.userRepo.UpdateWithAudit(ctx, user, strings.Join(changes, ", ")); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if len(changes) > 0 {
		log.Printf("USER_UPDATED: user_id=%d changes=%q", user.ID, strings.Join(changes, ", "))
	}
	return user, nil
}

// Delete implements domain.UserService. The delete-log entry and the row
// removal commit together; see UserRepository.DeleteWithAudit.
func (s *UserServiceImpl) Delete(ctx context.Context, userID uint, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return domain.ErrReasonRequired
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.DeleteWithAudit(ctx, user, reason); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	log.Printf("USER_DELETED: user_id=%d email=%s reason=%q", user.ID, user.LoginEmail, reason)
	return nil
}
