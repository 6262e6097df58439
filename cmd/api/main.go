package main

import (
	"log"

	"github.com/agente-stride/agent-api-backend/config"
	"github.com/agente-stride/agent-api-backend/internal/bootstrap"
	"github.com/agente-stride/agent-api-backend/internal/threat/llm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	model := llm.FromConfig(cfg.LLM)
	if model != nil {
		log.Printf("llm backend: provider=%s model=%s", model.Provider(), model.Model())
	} else {
		log.Printf("llm backend: none configured, heuristic analysis only")
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "agent-api-backend",
		Version:        cfg.App.Version,
		Mode:           cfg.App.Mode,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LLM:            model,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
