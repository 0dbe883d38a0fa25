package domain

import "time"

// User represents an account in the system
type User struct {
	ID           uint      `json:"id"`
	LoginEmail   string    `json:"login_email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Age          int       `json:"age"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// UserPatch enumerates the profile fields an update may change.
// Login email and password are not updatable through this path.
type UserPatch struct {
	Name   string
	Gender string
	Age    int
	Phone  string
}

// RegisterInput carries the fields required to create an account
type RegisterInput struct {
	LoginEmail string
	Password   string
	Name       string
	Gender     string
	Age        int
	Phone      string
}

// UserUpdateLog records one profile mutation; append-only
type UserUpdateLog struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	UpdatedBy uint      `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
	Changes   string    `json:"changes"`
}

// UserDeleteLog records one account removal; append-only
type UserDeleteLog struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	LoginEmail string    `json:"login_email"`
	DeletedBy  uint      `json:"deleted_by"`
	DeletedAt  time.Time `json:"deleted_at"`
	Reason     string    `json:"reason"`
}

// Post represents a board entry owned by a user
type Post struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostInput carries the writable post fields
type PostInput struct {
	Title   string
	Content string
}
