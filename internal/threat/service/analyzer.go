package service

import (
	"context"
	"strings"
	"time"

	"github.com/agente-stride/agent-api-backend/internal/threat/domain"
	"github.com/agente-stride/agent-api-backend/internal/threat/graph"
	"github.com/agente-stride/agent-api-backend/internal/threat/heuristic"
	"github.com/agente-stride/agent-api-backend/internal/threat/llm"
	"github.com/agente-stride/agent-api-backend/internal/threat/mitigation"
)

// ProviderHeuristic marks results produced without a model.
const ProviderHeuristic = "heuristico"

const (
	obsLLMOK     = "LLM OK"
	obsHeuristic = "Resultado heurístico (sem LLM)."
	obsFallback  = "Falha no LLM, usando heurística."
)

// Input is the validated analysis request. ImageB64 is empty when no
// diagram was uploaded.
type Input struct {
	AppType        string
	Authentication string
	InternetAccess string
	SensitiveData  string
	Description    string
	ImageB64       string
	ForceLLM       bool
}

// InputEcho mirrors the submitted fields back to the caller.
type InputEcho struct {
	AppType        string `json:"tipo_aplicacao"`
	Authentication string `json:"autenticacao"`
	InternetAccess string `json:"acesso_internet"`
	SensitiveData  string `json:"dados_sensiveis"`
	Description    string `json:"descricao_aplicacao"`
	Image          bool   `json:"imagem"`
}

// Outcome is the analysis payload: enriched threats plus their graph.
type Outcome struct {
	Threats []domain.Threat `json:"ameacas"`
	Graph   *graph.Graph    `json:"graph"`
}

// Result is the full response envelope.
type Result struct {
	Provider     string    `json:"provider"`
	Observations string    `json:"observacoes"`
	Input        InputEcho `json:"entrada"`
	Outcome      Outcome   `json:"resultado"`
}

// Analyzer runs one analysis per call: model path when available and asked
// for, heuristic path otherwise, then mitigation attachment and graph
// building. Stateless; safe for concurrent use.
type Analyzer struct {
	llm llm.Classifier
}

// NewAnalyzer wires the optional model collaborator. A nil classifier means
// every request takes the heuristic path.
func NewAnalyzer(model llm.Classifier) *Analyzer {
	return &Analyzer{llm: model}
}

// BuildPayload renders the labeled text block sent to the model.
func BuildPayload(in Input) string {
	return "Tipo de aplicação: " + in.AppType + "\n" +
		"Autenticação: " + in.Authentication + "\n" +
		"Exposição na Internet: " + in.InternetAccess + "\n" +
		"Dados sensíveis: " + in.SensitiveData + "\n" +
		"Descrição: " + in.Description + "\n" +
		"(Se houver imagem, ela está anexada em base64.)"
}

// classifierText feeds the heuristic rules the raw field values only. The
// labeled payload would always contain trigger words ("Internet", "Dados",
// "base64") and make every rule fire on every request.
func classifierText(in Input) string {
	return strings.Join([]string{
		in.AppType,
		in.Authentication,
		in.InternetAccess,
		in.SensitiveData,
		in.Description,
	}, "\n")
}

// Analyze never fails: a model error is logged, noted in the observations
// and replaced by the heuristic result.
func (a *Analyzer) Analyze(ctx context.Context, in Input) *Result {
	logger := NewLogger(ctx)

	provider := ProviderHeuristic
	observations := obsHeuristic
	var threats []domain.Threat

	if a.llm != nil && (in.ForceLLM || in.ImageB64 != "") {
		start := time.Now()
		assessment, err := a.llm.Classify(ctx, BuildPayload(in), in.ImageB64)
		recordLLMCall(time.Since(start), err)
		if err != nil {
			logger.LogError("analyze_llm", err)
			observations = obsFallback
		} else {
			threats = assessment.Threats
			provider = a.llm.Provider()
			observations = obsLLMOK
		}
	}

	if provider == ProviderHeuristic {
		threats = heuristic.Classify(classifierText(in))
		recordHeuristicRun()
	}

	enriched := mitigation.Attach(threats)

	return &Result{
		Provider:     provider,
		Observations: observations,
		Input: InputEcho{
			AppType:        in.AppType,
			Authentication: in.Authentication,
			InternetAccess: in.InternetAccess,
			SensitiveData:  in.SensitiveData,
			Description:    in.Description,
			Image:          in.ImageB64 != "",
		},
		Outcome: Outcome{
			Threats: enriched,
			Graph:   graph.Build(enriched),
		},
	}
}
