package llm

import "github.com/agente-stride/agent-api-backend/config"

// FromConfig picks the active backend: Azure when endpoint and key are set,
// plain OpenAI when only its key is set, nil otherwise. A nil classifier
// means every request takes the heuristic path.
func FromConfig(cfg config.LLMConfig) Classifier {
	switch {
	case cfg.AzureEndpoint != "" && cfg.AzureAPIKey != "":
		return NewAzure(cfg.AzureEndpoint, cfg.AzureAPIKey, cfg.AzureAPIVersion, cfg.AzureDeployment)
	case cfg.OpenAIAPIKey != "":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	default:
		return nil
	}
}
