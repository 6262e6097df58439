package threat

import "github.com/gin-gonic/gin"

// Register mounts the analysis routes. The root-level alias keeps the
// reference frontend working without a path change.
func (h *Handler) Register(r *gin.Engine) {
	v1 := r.Group("/api/v1/threat-model")
	v1.POST("/analyze", h.Analyze)
	v1.POST("/graph/dot", h.GraphDOT)

	r.POST("/analisar_ameacas", h.Analyze)
}
