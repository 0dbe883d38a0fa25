package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jd6186/interview-assignments/domain"
	"github.com/jd6186/interview-assignments/internal/mocks"
)

func storedTestUser() *domain.User {
	return &domain.User{
		ID:         1,
		LoginEmail: "a@x.com",
		Name:       "Test User",
		Gender:     "Male",
		Age:        30,
		Phone:      "123456789",
	}
}

func TestUserServiceImpl_Update(t *testing.T) {
	tests := []struct {
		name            string
		patch           domain.UserPatch
		expectedChanges string
	}{
		{
			name:            "no-op patch writes no audit entry",
			patch:           domain.UserPatch{Name: "Test User", Gender: "Male", Age: 30, Phone: "123456789"},
			expectedChanges: "",
		},
		{
			name:            "single changed field",
			patch:           domain.UserPatch{Name: "Updated User", Gender: "Male", Age: 30, Phone: "123456789"},
			expectedChanges: "name: Test User -> Updated User",
		},
		{
			name:  "every field changed",
			patch: domain.UserPatch{Name: "Updated User", Gender: "Female", Age: 35, Phone: "111111111"},
			expectedChanges: "name: Test User -> Updated User, gender: Male -> Female, " +
				"age: 30 -> 35, phone: 123456789 -> 111111111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
				return storedTestUser(), nil
			}
			var recordedChanges string
			auditCalls := 0
			userRepo.UpdateWithAuditFunc = func(ctx context.Context, user *domain.User, changes string) error {
				recordedChanges = changes
				if changes != "" {
					auditCalls++
				}
				return nil
			}

			svc := NewUserService(userRepo, mocks.NewMockAuthService())
			user, err := svc.Update(context.Background(), 1, tt.patch)
			if err != nil {
				t.Fatalf("Update() error = %v", err)
			}

			if recordedChanges != tt.expectedChanges {
				t.Errorf("changes = %q, want %q", recordedChanges, tt.expectedChanges)
			}
			if tt.expectedChanges == "" && auditCalls != 0 {
				t.Errorf("no-op patch produced %d audit entries", auditCalls)
			}
			if user.Name != tt.patch.Name || user.Gender != tt.patch.Gender ||
				user.Age != tt.patch.Age || user.Phone != tt.patch.Phone {
				t.Errorf("patched user = %+v, want fields from %+v", user, tt.patch)
			}
		})
	}
}

func TestUserServiceImpl_UpdateMissingUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()

	svc := NewUserService(userRepo, mocks.NewMockAuthService())
	_, err := svc.Update(context.Background(), 99, domain.UserPatch{Name: "Anyone"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("Update() error = %v, want ErrUserNotFound", err)
	}
}

func TestUserServiceImpl_Delete(t *testing.T) {
	tests := []struct {
		name          string
		userID        uint
		reason        string
		setupMocks    func(*mocks.MockUserRepository)
		expectedError error
	}{
		{
			name:   "successful delete records reason",
			userID: 1,
			reason: "leaving the service",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return storedTestUser(), nil
				}
			},
			expectedError: nil,
		},
		{
			name:          "blank reason rejected",
			userID:        1,
			reason:        "   ",
			setupMocks:    func(userRepo *mocks.MockUserRepository) {},
			expectedError: domain.ErrReasonRequired,
		},
		{
			name:   "missing user",
			userID: 99,
			reason: "test",
			setupMocks: func(userRepo *mocks.MockUserRepository) {
				userRepo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
					return nil, domain.ErrUserNotFound
				}
			},
			expectedError: domain.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := mocks.NewMockUserRepository()
			var deletedReason string
			userRepo.DeleteWithAuditFunc = func(ctx context.Context, user *domain.User, reason string) error {
				deletedReason = reason
				return nil
			}
			tt.setupMocks(userRepo)

			svc := NewUserService(userRepo, mocks.NewMockAuthService())
			err := svc.Delete(context.Background(), tt.userID, tt.reason)

			if tt.expectedError == nil {
				if err != nil {
					t.Fatalf("Delete() error = %v", err)
				}
				if deletedReason != tt.reason {
					t.Errorf("recorded reason = %q, want %q", deletedReason, tt.reason)
				}
				return
			}
			if !errors.Is(err, tt.expectedError) {
				t.Fatalf("Delete() error = %v, want %v", err, tt.expectedError)
			}
			if deletedReason != "" {
				t.Error("DeleteWithAudit must not run when validation fails")
			}
		})
	}
}

func TestUserServiceImpl_List(t *testing.T) {
	userRepo := mocks.NewMockUserRepository()
	userRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
		if limit != 10 || offset != 20 {
			t.Errorf("List forwarded limit=%d offset=%d, want 10/20", limit, offset)
		}
		return []domain.User{*storedTestUser()}, 57, nil
	}

	svc := NewUserService(userRepo, mocks.NewMockAuthService())
	users, total, err := svc.List(context.Background(), 10, 20)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(users) != 1 || total != 57 {
		t.Errorf("List() = %d users total %d, want 1/57", len(users), total)
	}
}
