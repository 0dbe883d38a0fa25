package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/domain"
	"github.com/jd6186/interview-assignments/internal/http/middleware"
)

// PostHandlers handles the authenticated post HTTP requests
type PostHandlers struct {
	postSvc domain.PostService
}

// NewPostHandlers creates new post handlers
func NewPostHandlers(postSvc domain.PostService) *PostHandlers {
	return &PostHandlers{postSvc: postSvc}
}

// PostRequest represents the writable post fields
type PostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// List handles the paginated post listing
func (h *PostHandlers) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	posts, err := h.postSvc.List(c.Request.Context(), q.Limit, q.Offset)
	if err != nil {
		log.Printf("post list failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(posts))
}

// Get handles the post detail lookup
func (h *PostHandlers) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	post, err := h.postSvc.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindUserNotFound))
			return
		}
		log.Printf("post lookup failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(post))
}

// Create handles post creation for the authenticated subject
func (h *PostHandlers) Create(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		c.JSON(http.StatusOK, domain.Fail(domain.KindInvalidCredentials))
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	post, err := h.postSvc.Create(c.Request.Context(), userID, domain.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		log.Printf("post create failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(post))
}

// Update handles post update, scoped to posts owned by the subject
func (h *PostHandlers) Update(c *gin.Context) {
	userID, ok := middleware.SubjectID(c)
	if !ok {
		c.JSON(http.StatusOK, domain.Fail(domain.KindInvalidCredentials))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, domain.Fail(domain.KindBadRequest))
		return
	}

	post, err := h.postSvc.Update(c.Request.Context(), uint(id), userID, domain.PostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPostNotFound) {
			c.JSON(http.StatusOK, domain.Fail(domain.KindUserNotFound))
			return
		}
		log.Printf("post update failed: %v", err)
		c.JSON(http.StatusOK, domain.Fail(domain.KindServerError))
		return
	}

	c.JSON(http.StatusOK, domain.OK(post))
}
