package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/agente-stride/agent-api-backend/internal/api/http"
	"github.com/agente-stride/agent-api-backend/internal/api/http/middleware"
	threathttp "github.com/agente-stride/agent-api-backend/internal/api/http/threat"
	"github.com/agente-stride/agent-api-backend/internal/threat/llm"
	"github.com/agente-stride/agent-api-backend/internal/threat/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Mode           string
	AllowedOrigins []string
	LLM            llm.Classifier // nil when no backend is configured
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
	}))

	provider, model := "", ""
	if dep.LLM != nil {
		provider = dep.LLM.Provider()
		model = dep.LLM.Model()
	}
	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Mode, provider, model)
	healthHandler.RegisterRoutes(r)

	analyzer := service.NewAnalyzer(dep.LLM)
	threatHandler := threathttp.NewHandler(analyzer)
	threatHandler.Register(r)

	return r
}
