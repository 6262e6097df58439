package heuristic

import (
	"strings"

	"github.com/agente-stride/agent-api-backend/internal/threat/domain"
)

// rule fires when any of its triggers is a substring of the lowercased
// input, and appends its threats in declared order. Rules are independent;
// every rule is evaluated on every input.
type rule struct {
	triggers []string
	threats  []domain.Threat
}

func (r rule) matches(lower string) bool {
	for _, t := range r.triggers {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// rules is the fixed trigger table. Triggers are deliberately coarse
// ("base" also hits "database", "base64"); keep them as-is, callers depend
// on the exact output for a given text.
var rules = []rule{
	{
		triggers: []string{"web", "http"},
		threats: []domain.Threat{
			{
				Category:       domain.CategorySpoofing,
				Title:          "Impersonação de usuário",
				Description:    "Risco de credenciais fracas/reutilizadas.",
				AffectedAssets: []string{"Frontend", "App"},
			},
			{
				Category:       domain.CategoryRepudiation,
				Title:          "Ação não rastreável",
				Description:    "Trilha de auditoria insuficiente.",
				AffectedAssets: []string{"App"},
			},
		},
	},
	{
		triggers: []string{"sql", "dados", "base"},
		threats: []domain.Threat{
			{
				Category:       domain.CategoryTampering,
				Title:          "Manipulação de dados",
				Description:    "Entrada sem validação pode alterar registros.",
				AffectedAssets: []string{"DB"},
			},
			{
				Category:       domain.CategoryInformationDisclosure,
				Title:          "Vazamento de PII",
				Description:    "Falta de criptografia/mascaramento.",
				AffectedAssets: []string{"DB", "Relatórios"},
			},
		},
	},
	{
		triggers: []string{"internet", "exposta"},
		threats: []domain.Threat{
			{
				Category:       domain.CategoryDenialOfService,
				Title:          "Sobrecarga de requisições",
				Description:    "Falta de rate limit e proteção anti-bot.",
				AffectedAssets: []string{"Edge", "App"},
			},
			{
				Category:       domain.CategoryElevationOfPrivilege,
				Title:          "Permissões amplas",
				Description:    "Papéis largos permitem abuso lateral.",
				AffectedAssets: []string{"IAM", "App"},
			},
		},
	},
}

// Classify maps a free-text architecture description to threats by
// substring triggers. Deterministic and order-stable; an input matching no
// rule yields an empty list, which is a valid result.
func Classify(text string) []domain.Threat {
	lower := strings.ToLower(text)

	var out []domain.Threat
	for _, r := range rules {
		if !r.matches(lower) {
			continue
		}
		for _, t := range r.threats {
			out = append(out, t.Clone())
		}
	}
	return out
}
