package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/agente-stride/agent-api-backend/internal/threat/domain"
)

// systemPrompt pins the model to strict JSON in the assessment shape.
const systemPrompt = "Você é um engenheiro de segurança. Analise a arquitetura a partir do texto e da imagem " +
	"usando STRIDE. Responda rigorosamente em JSON com os campos:\n" +
	"{ 'ameacas': [ {'categoria':'Spoofing|Tampering|Repudiation|Information Disclosure|Denial of Service|Elevation of Privilege'," +
	"  'titulo': str, 'descricao': str, 'ativos_afetados': [str]} ], 'observacoes': str }"

// Classifier is the external model collaborator: given the payload text and
// an optional base64 PNG, return an assessment or fail. Callers treat any
// error as "model unavailable" and fall back to the heuristic path.
type Classifier interface {
	Provider() string
	Model() string
	Classify(ctx context.Context, payloadText, imageB64 string) (*domain.Assessment, error)
}

// Client talks to an OpenAI-compatible chat-completions endpoint. Azure and
// plain OpenAI differ only in URL and auth header; both are built through
// the constructors in azure.go / openai.go.
type Client struct {
	provider   string
	model      string
	URL        string
	AuthHeader string
	AuthValue  string
	HTTP       *http.Client
}

func (c *Client) Provider() string { return c.provider }
func (c *Client) Model() string    { return c.model }

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Classify sends one chat-completions request and parses the JSON content
// of the first choice into an assessment. Exactly one attempt, bounded by
// the HTTP client timeout.
func (c *Client) Classify(ctx context.Context, payloadText, imageB64 string) (*domain.Assessment, error) {
	user := []contentPart{{Type: "text", Text: payloadText}}
	if imageB64 != "" {
		user = append(user, contentPart{
			Type:     "image_url",
			ImageURL: &imageRef{URL: "data:image/png;base64," + imageB64},
		})
	}

	body, _ := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: user},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		Temperature:    0.2,
		MaxTokens:      900,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(c.AuthHeader, c.AuthValue)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llm call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("llm call: status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("llm decode: %w", err)
	}
	if len(out.Choices) == 0 {
		return nil, fmt.Errorf("llm decode: no choices in response")
	}

	var assessment domain.Assessment
	if err := json.Unmarshal([]byte(out.Choices[0].Message.Content), &assessment); err != nil {
		return nil, fmt.Errorf("llm content parse: %w", err)
	}
	return &assessment, nil
}

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}
