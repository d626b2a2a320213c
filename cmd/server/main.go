package main

import (
	"fmt"
	"log"

	"checktrack/internal/auth"
	"checktrack/internal/config"
	"checktrack/internal/server"
	"checktrack/internal/services"
)

func main() {
	cfg := config.Load()

	registry := services.NewRegistry(cfg.DataDir)
	if err := registry.Init(); err != nil {
		log.Fatalf("failed to initialize data dir: %v", err)
	}

	authSvc := auth.NewService(registry.Users, cfg.TokenSecret)
	r := server.NewRouter(registry, authSvc)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
