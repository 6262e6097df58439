package mitigation

import "github.com/agente-stride/agent-api-backend/internal/threat/domain"

// maxPerThreat caps how many suggestions a single threat carries.
const maxPerThreat = 4

// catalog maps STRIDE category to suggested mitigations, in priority order.
// Built once at init, read-only afterwards; safe for concurrent readers.
var catalog = map[string][]string{
	domain.CategorySpoofing: {
		"MFA e política de senha",
		"Sessão segura (SameSite/HttpOnly/Secure)",
		"Assinatura/rotação de tokens",
		"mTLS/Device binding",
	},
	domain.CategoryTampering: {
		"Validação de entrada",
		"Assinatura/HMAC de payloads",
		"Integridade no CI/CD",
		"WAF/IDS",
	},
	domain.CategoryRepudiation: {
		"Logs imutáveis/assinados",
		"Auditoria completa",
		"Correlação com identidade",
		"Sincronismo NTP",
	},
	domain.CategoryInformationDisclosure: {
		"TLS 1.2+ em trânsito",
		"Criptografia em repouso (KMS)",
		"Mascaramento/Tokenização de PII",
		"CORS restrito",
	},
	domain.CategoryDenialOfService: {
		"Rate limit/cotas",
		"Timeouts/backpressure",
		"Circuit breaker",
		"Autoscaling + proteção upstream",
	},
	domain.CategoryElevationOfPrivilege: {
		"Menor privilégio (RBAC/IAM)",
		"Segregação de funções",
		"Revisão periódica de acessos",
		"Vault de segredos + rotação",
	},
}

// Lookup returns a copy of the catalog entries for a category, truncated to
// the per-threat cap. Unknown categories get an empty list, not an error.
func Lookup(category string) []string {
	entries, ok := catalog[category]
	if !ok {
		return []string{}
	}
	if len(entries) > maxPerThreat {
		entries = entries[:maxPerThreat]
	}
	return append([]string(nil), entries...)
}

// Attach returns a new threat list with mitigations filled in from the
// catalog. Input order and length are preserved; the input is not mutated.
func Attach(threats []domain.Threat) []domain.Threat {
	out := make([]domain.Threat, 0, len(threats))
	for _, t := range threats {
		t = t.Clone()
		t.Mitigations = Lookup(t.Category)
		if t.AffectedAssets == nil {
			// model output may omit the asset list; keep the wire shape stable
			t.AffectedAssets = []string{}
		}
		out = append(out, t)
	}
	return out
}
