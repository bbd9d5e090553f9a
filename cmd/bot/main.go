package main

import (
	"log"

	"github.com/kompanion-app/kompanion/internal/bot"
)

func main() {
	cfg, err := bot.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := bot.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("bot error: %v", err)
	}
}
