package main

import (
	"log"

	"resume-builder/internal/bootstrap"
	"resume-builder/internal/config"
	"resume-builder/internal/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s (store=%s, llm=%s)", addr, cfg.RecordStore, cfg.LLMProvider)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
