package main

import (
	"log"
	_ "time/tzdata" // invites may name any IANA zone, the image ships none

	"github.com/aussiebroadwan/shm/internal/shm/app"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
