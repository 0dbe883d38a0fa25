package domain

import "context"

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uint) (*User, error)
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
	// UpdateWithAudit persists the user row and, when changes is non-empty,
	// appends one update-log entry in the same transaction.
	UpdateWithAudit(ctx context.Context, user *User, changes string) error
	// DeleteWithAudit appends the delete-log entry and removes the user row
	// in one transaction.
	DeleteWithAudit(ctx context.Context, user *User, reason string) error
}

// PostRepository defines post data access operations
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id uint) (*Post, error)
	List(ctx context.Context, limit, offset int) ([]Post, error)
	// FindOwned returns the post only when it belongs to userID.
	FindOwned(ctx context.Context, id, userID uint) (*Post, error)
	Update(ctx context.Context, post *Post) error
}

// AuditLogRepository exposes the append-only mutation history
type AuditLogRepository interface {
	ListUpdates(ctx context.Context, userID uint) ([]UserUpdateLog, error)
	ListDeletions(ctx context.Context, userID uint) ([]UserDeleteLog, error)
}

// AuthService defines registration and login business logic
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// UserService defines the authenticated user operations
type UserService interface {
	List(ctx context.Context, limit, offset int) ([]User, int64, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, input RegisterInput) (*User, error)
	Update(ctx context.Context, userID uint, patch UserPatch) (*User, error)
	Delete(ctx context.Context, userID uint, reason string) error
}

// PostService defines the authenticated post operations
type PostService interface {
	List(ctx context.Context, limit, offset int) ([]Post, error)
	Get(ctx context.Context, id uint) (*Post, error)
	Create(ctx context.Context, userID uint, input PostInput) (*Post, error)
	Update(ctx context.Context, id, userID uint, input PostInput) (*Post, error)
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines stateless access-token operations
type TokenService interface {
	Issue(userID uint) (string, error)
	// Decode returns the subject user id. Failures are ErrTokenExpired when
	// the token is past its expiry, ErrTokenMalformed when the structure or
	// claims cannot be read, and ErrTokenInvalid otherwise.
	Decode(token string) (uint, error)
}
