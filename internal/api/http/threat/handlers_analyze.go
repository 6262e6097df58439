package threat

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agente-stride/agent-api-backend/internal/threat/graph"
	"github.com/agente-stride/agent-api-backend/internal/threat/service"
)

type Handler struct {
	analyzer *service.Analyzer
}

func NewHandler(analyzer *service.Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// Analyze accepts the architecture form (five required text fields, an
// optional diagram image, an optional force_llm flag) and returns the full
// analysis envelope. Model failures never fail the request.
func (h *Handler) Analyze(c *gin.Context) {
	var form analyzeForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required form fields: " + err.Error()})
		return
	}

	// force_llm counts as set even when its value is empty.
	_, forceLLM := c.GetPostForm("force_llm")

	imgB64, err := imageBase64(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "reading uploaded image: " + err.Error()})
		return
	}

	result := h.analyzer.Analyze(c.Request.Context(), service.Input{
		AppType:        form.TipoAplicacao,
		Authentication: form.Autenticacao,
		InternetAccess: form.AcessoInternet,
		SensitiveData:  form.DadosSensiveis,
		Description:    form.DescricaoAplicacao,
		ImageB64:       imgB64,
		ForceLLM:       forceLLM,
	})

	c.JSON(http.StatusOK, result)
}

// GraphDOT renders a threat list as graphviz text.
func (h *Handler) GraphDOT(c *gin.Context) {
	var req GraphDOTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body: " + err.Error()})
		return
	}

	dot := graph.ToDOT(graph.Build(req.Threats), req.Title)
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", []byte(dot))
}

func imageBase64(c *gin.Context) (string, error) {
	fh, err := c.FormFile("imagem")
	if err != nil || fh == nil {
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
