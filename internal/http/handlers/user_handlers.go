package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/domain"
	"github.com/jd6186/interview-assignments/internal/http/middleware"
)

// UserHandlers handles the authenticated user HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// ListQuery represents pagination parameters
type ListQuery struct {
	Limit  int `form:"limit,default=10" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UpdateUserRequest represents the full profile patch
type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required"`
	Gender string `json:"gender"`
	Age    int    `json:"age"`
	Phone  string `json:"phone"`
}

// List handles the paginated user listing
func (h *UserHandlers) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		log.Printf("user list failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OKWithTotal(users, total))
}

// Get handles the user detail lookup by login email
func (h *UserHandlers) Get(c *gin.Context) {
	email := c.Param("login_email")

	user, err := h.userSvc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindUserNotFound))
			return
		}
		log.Printf("user lookup failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(user))
}

// Create handles authenticated user creation; same shape and conflict rule
// as registration
func (h *UserHandlers) Create(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), domain.RegisterInput{
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
		log.Printf("user create failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(user))
}

// Update applies the full profile patch to the authenticated subject
func (h *UserHandlers) Update(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		c.JSON(http.StatusOK, domain.Fail(domain.KindInvalidCredentials))
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), userID, domain.UserPatch{
		Name:   req.Name,
		Gender: req.Gender,
		Age:    req.Age,
		Phone:  req.Phone,
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindUserNotFound))
			return
		}
		log.Printf("user update failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(user))
}

// Delete removes the authenticated subject; the reason query parameter is
// always required
func (h *UserHandlers) Delete(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		c.JSON(http.StatusOK, domain.Fail(domain.KindInvalidCredentials))
		return
	}

	reason := c.Query("reason")

	err := h.userSvc.Delete(c.Request.Context(), userID, reason)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrReasonRequired):
			c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusOK, domain.Fail(domain.KindUserNotFound))
		default:
			log.Printf("user delete failed: %v", err)
			c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		}
		return
	}

	c.JSON(http.StatusOK, domain.OK(gin.H{"reason": reason}))
}
