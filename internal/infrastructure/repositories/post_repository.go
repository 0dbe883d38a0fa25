package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jd6186/interview-assignments/domain"
)

// PostRepositoryImpl implements domain.PostRepository using GORM
type PostRepositoryImpl struct {
	db *gorm.DB
}

// DBPost represents the database model for Post (with GORM tags)
type DBPost struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index;not null"`
	Title     string `gorm:"size:255;not null"`
	Content   string
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (DBPost) TableName() string {
	return "posts"
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) domain.PostRepository {
	return &PostRepositoryImpl{db: db}
}

// Create implements domain.PostRepository
func (r *PostRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	dbPost := r.domainToDB(post)
	if err := r.db.WithContext(ctx).Create(dbPost).Error; err != nil {
		return err
	}
	post.ID = dbPost.ID
	return nil
}

// FindByID implements domain.PostRepository
func (r *PostRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.Post, error) {
	var dbPost DBPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbPost).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPost), nil
}

// FindOwned implements domain.PostRepository. A post that exists but belongs
// to another user is reported as not found, never as forbidden.
func (r *PostRepositoryImpl) FindOwned(ctx context.Context, id, userID uint) (*domain.Post, error) {
	var dbPost DBPost
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&dbPost).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPostNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbPost), nil
}

// List implements domain.PostRepository
func (r *PostRepositoryImpl) List(ctx context.Context, limit, offset int) ([]domain.Post, error) {
	var dbPosts []DBPost
	err := r.db.WithContext(ctx).Order("id").Limit(limit).Offset(offset).Find(&dbPosts).Error
	if err != nil {
		return nil, err
	}
	posts := make([]domain.Post, 0, len(dbPosts))
	for i := range dbPosts {
		posts = append(posts, *r.dbToDomain(&dbPosts[i]))
	}
	return posts, nil
}

// Update implements domain.PostRepository
func (r *PostRepositoryImpl) Update(ctx context.Context, post *domain.Post) error {
	return r.db.WithContext(ctx).Save(r.domainToDB(post)).Error
}

// domainToDB converts domain post to database post
func (r *PostRepositoryImpl) domainToDB(post *domain.Post) *DBPost {
	return &DBPost{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Content:   post.Content,
		UpdatedAt: post.UpdatedAt,
	}
}

// dbToDomain converts database post to domain post
func (r *PostRepositoryImpl) dbToDomain(dbPost *DBPost) *domain.Post {
	return &domain.Post{
		ID:        dbPost.ID,
		UserID:    dbPost.UserID,
		Title:     dbPost.Title,
		Content:   dbPost.Content,
		UpdatedAt: dbPost.UpdatedAt,
	}
}
