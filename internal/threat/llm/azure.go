package llm

import "strings"

// NewAzure builds a classifier against an Azure OpenAI deployment. The
// deployment name doubles as the model identifier.
func NewAzure(endpoint, apiKey, apiVersion, deployment string) *Client {
	base := strings.TrimRight(endpoint, "/")
	return &Client{
		provider:   "azure",
		model:      deployment,
		URL:        base + "/openai/deployments/" + deployment + "/chat/completions?api-version=" + apiVersion,
		AuthHeader: "api-key",
		AuthValue:  apiKey,
		HTTP:       newHTTPClient(),
	}
}
