package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/domain"
)

// AuthHandlers handles registration and login HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	LoginEmail string `json:"login_email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Gender     string `json:"gender"`
	Age        int    `json:"age"`
	Phone      string `json:"phone"`
}

// LoginRequest represents login request
type LoginRequest struct {
	LoginEmail string `json:"login_email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	user, err := h.authSvc.Register(c.Request.Context(), domain.RegisterInput{
		LoginEmail: req.LoginEmail,
		Password:   req.Password,
		Name:       req.Name,
		Gender:     req.Gender,
		Age:        req.Age,
		Phone:      req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
			return
		}
		log.Printf("register failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(user))
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.LoginEmail, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindInvalidCredentials))
			return
		}
		log.Printf("login failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(gin.H{"access_token": token}))
}
