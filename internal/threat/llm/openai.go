package llm

const openAIChatURL = "https://api.openai.com/v1/chat/completions"

// NewOpenAI builds a classifier against the public OpenAI API. Tests point
// URL at a local server.
func NewOpenAI(apiKey, model string) *Client {
	return &Client{
		provider:   "openai",
		model:      model,
		URL:        openAIChatURL,
		AuthHeader: "Authorization",
		AuthValue:  "Bearer " + apiKey,
		HTTP:       newHTTPClient(),
	}
}
