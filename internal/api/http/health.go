package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Mode      string    `json:"mode"`
	LLM       string    `json:"llm"`
	Model     string    `json:"model,omitempty"`
}

// HealthHandler reports service identity and which model backend is active
// ("none" when requests always take the heuristic path).
type HealthHandler struct {
	serviceName string
	version     string
	mode        string
	llmProvider string
	llmModel    string
}

func NewHealthHandler(serviceName, version, mode, llmProvider, llmModel string) *HealthHandler {
	if llmProvider == "" {
		llmProvider = "none"
	}
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		mode:        mode,
		llmProvider: llmProvider,
		llmModel:    llmModel,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Mode:      h.mode,
		LLM:       h.llmProvider,
		Model:     h.llmModel,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
