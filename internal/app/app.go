package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jd6186/interview-assignments/internal/config"
	httpx "github.com/jd6186/interview-assignments/internal/http"
	"github.com/jd6186/interview-assignments/internal/http/handlers"
	"github.com/jd6186/interview-assignments/internal/http/middleware"
)

// RunAuth starts the registration/login service
func RunAuth(cfg *config.Config) error {
	setGinMode(cfg)
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	r := httpx.BuildAuthRouter(handlers.NewAuthHandlers(c.AuthSvc))
	return listen("authsvc", cfg.AuthPort, r)
}

// RunUser starts the user service
func RunUser(cfg *config.Config) error {
	setGinMode(cfg)
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	r := httpx.BuildUserRouter(handlers.NewUserHandlers(c.UserSvc), middleware.NewAuthMW(c.TokenSvc))
	return listen("usersvc", cfg.UserPort, r)
}

// RunPost starts the post service
func RunPost(cfg *config.Config) error {
	setGinMode(cfg)
	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	r := httpx.BuildPostRouter(handlers.NewPostHandlers(c.PostSvc), middleware.NewAuthMW(c.TokenSvc))
	return listen("postsvc", cfg.PostPort, r)
}

func setGinMode(cfg *config.Config) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
}

func listen(name, port string, r *gin.Engine) error {
	addr := ":" + port
	log.Printf("%s listening on %s", name, addr)
	return http.ListenAndServe(addr, r)
}
