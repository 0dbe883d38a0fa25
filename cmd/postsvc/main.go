package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/jd6186/interview-assignments/internal/app"
	"github.com/jd6186/interview-assignments/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.RunPost(cfg); err != nil {
		log.Fatalf("postsvc: %v", err)
	}
}
