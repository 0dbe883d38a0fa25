package app

import (
	"gorm.io/gorm"

	"github.com/jd6186/interview-assignments/domain"
	"github.com/jd6186/interview-assignments/internal/config"
	"github.com/jd6186/interview-assignments/internal/infrastructure/auth"
	"github.com/jd6186/interview-assignments/internal/infrastructure/database"
	"github.com/jd6186/interview-assignments/internal/infrastructure/repositories"
	"github.com/jd6186/interview-assignments/internal/services"
)

// Container holds all dependencies shared by the services
type Container struct {
	Config *config.Config

	DB *gorm.DB

	UserRepo  domain.UserRepository
	PostRepo  domain.PostRepository
	AuditRepo domain.AuditLogRepository

	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	AuthSvc     domain.AuthService
	UserSvc     domain.UserService
	PostSvc     domain.PostService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	db, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, DB: db}

	c.UserRepo = repositories.NewUserRepository(db)
	c.PostRepo = repositories.NewPostRepository(db)
	c.AuditRepo = repositories.NewAuditLogRepository(db)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessTTL)

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc)
	c.UserSvc = services.NewUserService(c.UserRepo, c.AuthSvc)
	c.PostSvc = services.NewPostService(c.PostRepo)

	return c, nil
}

// Close closes the database connection
func (c *Container) Close() error {
	if c.DB == nil {
		return nil
	}
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
