package threat

import "github.com/agente-stride/agent-api-backend/internal/threat/domain"

// analyzeForm binds the multipart fields of the analyze operation. All five
// text fields are required; force_llm and the "imagem" file part are not.
type analyzeForm struct {
	TipoAplicacao      string `form:"tipo_aplicacao" binding:"required"`
	Autenticacao       string `form:"autenticacao" binding:"required"`
	AcessoInternet     string `form:"acesso_internet" binding:"required"`
	DadosSensiveis     string `form:"dados_sensiveis" binding:"required"`
	DescricaoAplicacao string `form:"descricao_aplicacao" binding:"required"`
}

// GraphDOTRequest feeds an already-computed threat list to the DOT export.
type GraphDOTRequest struct {
	Threats []domain.Threat `json:"ameacas"`
	Title   string          `json:"title,omitempty"`
}
