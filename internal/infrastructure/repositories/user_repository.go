package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jd6186/interview-assignments/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID           uint   `gorm:"primaryKey"`
	LoginEmail   string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"column:password;not null"`
	Name         string `gorm:"size:255;not null"`
	Gender       string `gorm:"size:32"`
	Age          int
	Phone        string `gorm:"size:32"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// DBUserUpdateLog represents one row of the profile-change history
type DBUserUpdateLog struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"index;not null"`
	UpdatedBy uint `gorm:"not null"`
	UpdatedAt time.Time
	Changes   string `gorm:"not null"`
}

// TableName returns the table name for GORM
func (DBUserUpdateLog) TableName() string {
	return "user_update_logs"
}

// DBUserDeleteLog represents one row of the account-removal history
type DBUserDeleteLog struct {
	ID         uint   `gorm:"primaryKey"`
	UserID     uint   `gorm:"index;not null"`
	LoginEmail string `gorm:"size:255;not null"`
	DeletedBy  uint   `gorm:"not null"`
	DeletedAt  time.Time
	Reason     string
}

// TableName returns the table name for GORM
func (DBUserDeleteLog) TableName() string {
	return "user_delete_logs"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate login_email surfaces
// as ErrEmailTaken from the unique index, not from a racy pre-check.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailTaken
		}
		return err
	}
	user.ID = dbUser.ID
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("login_email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context, limit, offset int) ([]domain.User, int64, error) {
	var dbUsers []DBUser
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&dbUsers).Error
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&DBUser{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(dbUsers))
	for i := range dbUsers {
		users = append(users, *r.dbToDomain(&dbUsers[i]))
	}
	return users, total, nil
}

// UpdateWithAudit implements domain.UserRepository. The row write and the
// audit append commit or roll back together.
func (r *UserRepositoryImpl) UpdateWithAudit(ctx context.Context, user *domain.User, changes string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(r.domainToDB(user)).Error; err != nil {
			return err
		}
		if changes == "" {
			return nil
		}
		entry := DBUserUpdateLog{
			UserID:    user.ID,
			UpdatedBy: user.ID,
			UpdatedAt: time.Now().UTC(),
			Changes:   changes,
		}
		return tx.Create(&entry).Error
	})
}

// DeleteWithAudit implements domain.UserRepository. The delete-log entry is
// written before the row removal inside one transaction, so a crash never
// leaves a removal without its record.
func (r *UserRepositoryImpl) DeleteWithAudit(ctx context.Context, user *domain.User, reason string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := DBUserDeleteLog{
			UserID:     user.ID,
			LoginEmail: user.LoginEmail,
			DeletedBy:  user.ID,
			DeletedAt:  time.Now().UTC(),
			Reason:     reason,
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", user.ID).Delete(&DBUser{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	})
}

// domainToDB converts domain user to database user
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:           user.ID,
		LoginEmail:   user.LoginEmail,
		PasswordHash: user.PasswordHash,
		Name:         user.Name,
		Gender:       user.Gender,
		Age:          user.Age,
		Phone:        user.Phone,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// dbToDomain converts database user to domain user
func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:           dbUser.ID,
		LoginEmail:   dbUser.LoginEmail,
		PasswordHash: dbUser.PasswordHash,
		Name:         dbUser.Name,
		Gender:       dbUser.Gender,
		Age:          dbUser.Age,
		Phone:        dbUser.Phone,
		CreatedAt:    dbUser.CreatedAt,
		UpdatedAt:    dbUser.UpdatedAt,
	}
}
