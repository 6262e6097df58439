package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agente-stride/agent-api-backend/internal/threat/domain"
	"github.com/agente-stride/agent-api-backend/internal/threat/graph"
)

type fakeClassifier struct {
	provider   string
	model      string
	assessment *domain.Assessment
	err        error
	calls      int
}

func (f *fakeClassifier) Provider() string { return f.provider }
func (f *fakeClassifier) Model() string    { return f.model }

func (f *fakeClassifier) Classify(_ context.Context, _, _ string) (*domain.Assessment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.assessment, nil
}

func fillerInput() Input {
	return Input{
		AppType:        "api rest",
		Authentication: "senha simples",
		InternetAccess: "sim",
		SensitiveData:  "nenhum",
		Description:    "apenas texto de preenchimento",
	}
}

func TestAnalyze_NoModelConfigured(t *testing.T) {
	a := NewAnalyzer(nil)

	in := fillerInput()
	in.Description = "Aplicação web com acesso à internet, sem autenticação forte, manipula dados de clientes"

	res := a.Analyze(context.Background(), in)

	assert.Equal(t, ProviderHeuristic, res.Provider)
	assert.Equal(t, "Resultado heurístico (sem LLM).", res.Observations)
	require.Len(t, res.Outcome.Threats, 6)
	assert.Equal(t, []string{
		domain.CategorySpoofing,
		domain.CategoryRepudiation,
		domain.CategoryTampering,
		domain.CategoryInformationDisclosure,
		domain.CategoryDenialOfService,
		domain.CategoryElevationOfPrivilege,
	}, threatCategories(res.Outcome.Threats))

	for _, th := range res.Outcome.Threats {
		assert.NotEmpty(t, th.Mitigations)
		assert.LessOrEqual(t, len(th.Mitigations), 4)
	}

	catNodes := 0
	for _, n := range res.Outcome.Graph.Nodes {
		if n.Data.Kind == graph.KindCategory {
			catNodes++
		}
	}
	assert.Equal(t, 6, catNodes)
}

func TestAnalyze_FillerTextMatchesNothing(t *testing.T) {
	a := NewAnalyzer(nil)
	res := a.Analyze(context.Background(), fillerInput())

	assert.Equal(t, ProviderHeuristic, res.Provider)
	assert.Empty(t, res.Outcome.Threats)
	assert.NotNil(t, res.Outcome.Threats, "ameacas must serialize as [], not null")
	assert.Empty(t, res.Outcome.Graph.Nodes)
	assert.Empty(t, res.Outcome.Graph.Edges)
}

func TestAnalyze_ModelPathWithImage(t *testing.T) {
	fake := &fakeClassifier{
		provider: "azure",
		model:    "gpt4o",
		assessment: &domain.Assessment{
			Threats: []domain.Threat{{
				Category:       domain.CategoryTampering,
				Title:          "Alteração de fluxo",
				Description:    "d",
				AffectedAssets: []string{"Gateway"},
			}},
			Observations: "nota do modelo",
		},
	}
	a := NewAnalyzer(fake)

	in := fillerInput()
	in.ImageB64 = "aW1n"
	res := a.Analyze(context.Background(), in)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "azure", res.Provider)
	assert.Equal(t, "LLM OK", res.Observations)
	require.Len(t, res.Outcome.Threats, 1)
	assert.Equal(t, "Validação de entrada", res.Outcome.Threats[0].Mitigations[0])
	assert.True(t, res.Input.Image)
}

func TestAnalyze_ModelSkippedWithoutImageOrForce(t *testing.T) {
	fake := &fakeClassifier{provider: "openai", assessment: &domain.Assessment{}}
	a := NewAnalyzer(fake)

	res := a.Analyze(context.Background(), fillerInput())

	assert.Equal(t, 0, fake.calls)
	assert.Equal(t, ProviderHeuristic, res.Provider)
}

func TestAnalyze_ForceFlagTriggersModel(t *testing.T) {
	fake := &fakeClassifier{provider: "openai", assessment: &domain.Assessment{Threats: []domain.Threat{}}}
	a := NewAnalyzer(fake)

	in := fillerInput()
	in.ForceLLM = true
	res := a.Analyze(context.Background(), in)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "openai", res.Provider)
}

func TestAnalyze_ModelFailureFallsBack(t *testing.T) {
	fake := &fakeClassifier{provider: "azure", err: errors.New("boom")}
	a := NewAnalyzer(fake)

	in := fillerInput()
	in.ForceLLM = true
	in.Description = "portal web"
	res := a.Analyze(context.Background(), in)

	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, ProviderHeuristic, res.Provider)
	assert.Equal(t, "Falha no LLM, usando heurística.", res.Observations)
	require.Len(t, res.Outcome.Threats, 2, "heuristic result replaces the failed model call")
}

func TestAnalyze_EchoesInput(t *testing.T) {
	a := NewAnalyzer(nil)
	in := fillerInput()
	res := a.Analyze(context.Background(), in)

	assert.Equal(t, in.AppType, res.Input.AppType)
	assert.Equal(t, in.Authentication, res.Input.Authentication)
	assert.Equal(t, in.InternetAccess, res.Input.InternetAccess)
	assert.Equal(t, in.SensitiveData, res.Input.SensitiveData)
	assert.Equal(t, in.Description, res.Input.Description)
	assert.False(t, res.Input.Image)
}

func TestBuildPayload_LabeledLines(t *testing.T) {
	p := BuildPayload(fillerInput())
	assert.Contains(t, p, "Tipo de aplicação: api rest\n")
	assert.Contains(t, p, "Descrição: apenas texto de preenchimento\n")
	assert.Contains(t, p, "(Se houver imagem, ela está anexada em base64.)")
}

func TestClassifierText_NoScaffolding(t *testing.T) {
	// The scaffold labels must never leak into the heuristic input, or the
	// "Internet"/"Dados"/"base64" wording would fire rules on every request.
	text := classifierText(fillerInput())
	assert.NotContains(t, text, "Exposição")
	assert.NotContains(t, text, "base64")
	assert.NotContains(t, text, "Dados sensíveis")
}

func TestMetrics_RecordsCalls(t *testing.T) {
	ResetMetrics()

	fake := &fakeClassifier{provider: "azure", err: errors.New("boom")}
	a := NewAnalyzer(fake)
	in := fillerInput()
	in.ForceLLM = true
	_ = a.Analyze(context.Background(), in)
	_ = NewAnalyzer(nil).Analyze(context.Background(), fillerInput())

	m := GetMetrics()
	assert.Equal(t, int64(1), m.LLMCalls())
	assert.Equal(t, int64(1), m.LLMErrors())
	assert.Equal(t, float64(100), m.LLMErrorRate())
	assert.Equal(t, int64(2), m.HeuristicRuns())
}

func threatCategories(threats []domain.Threat) []string {
	out := make([]string, 0, len(threats))
	for _, t := range threats {
		out = append(out, t.Category)
	}
	return out
}
