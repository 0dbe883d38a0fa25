package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/internal/http/handlers"
	"github.com/jd6186/interview-assignments/internal/http/middleware"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	return r
}

// BuildAuthRouter wires the registration and login endpoints
func BuildAuthRouter(ah *handlers.AuthHandlers) *gin.Engine {
	r := newEngine()

	auth := r.Group("/auth")
	auth.POST("/register", ah.Register)
	auth.POST("/login", ah.Login)

	return r
}

// BuildUserRouter wires the user endpoints behind the bearer guard
func BuildUserRouter(uh *handlers.UserHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := newEngine()

	users := r.Group("/users").Use(jwtmw.WithJWT())
	users.GET("", uh.List)
	users.GET("/:login_email", uh.Get)
	users.POST("", uh.Create)
	users.PUT("", uh.Update)
	users.DELETE("", uh.Delete)

	return r
}

// BuildPostRouter wires the post endpoints behind the bearer guard
func BuildPostRouter(ph *handlers.PostHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := newEngine()

	posts := r.Group("/posts").Use(jwtmw.WithJWT())
	posts.GET("", ph.List)
	posts.GET("/:id", ph.Get)
	posts.POST("", ph.Create)
	posts.PUT("/:id", ph.Update)

	return r
}
