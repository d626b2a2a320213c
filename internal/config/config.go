package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DataDir     string
	ServerPort  string
	TokenSecret string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:     os.Getenv("DATA_DIR"),
		ServerPort:  os.Getenv("SERVER_PORT"),
		TokenSecret: os.Getenv("TOKEN_SECRET"),
	}

	if cfg.DataDir == "" {
		cfg.DataDir = "server-data"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.TokenSecret == "" {
		log.Fatal("TOKEN_SECRET is not set")
	}

	return cfg
}
