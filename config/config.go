package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	App    AppConfig
	CORS   CORSConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	Environment string
	Mode        string
	Version     string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LLMConfig holds both backend settings; which one is active is decided at
// startup (Azure wins when fully configured, then OpenAI, else none).
type LLMConfig struct {
	AzureAPIKey     string
	AzureEndpoint   string
	AzureAPIVersion string
	AzureDeployment string

	OpenAIAPIKey string
	OpenAIModel  string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			Mode:        strings.ToLower(getEnv("MODE", "unsafe")),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsList("ALLOWED_ORIGINS",
				[]string{"http://localhost:5173", "http://127.0.0.1:5173"}),
		},
		LLM: LLMConfig{
			AzureAPIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			AzureEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			AzureAPIVersion: getEnv("AZURE_OPENAI_API_VERSION", "2024-05-01-preview"),
			AzureDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", ""),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.LLM.AzureEndpoint != "" && c.LLM.AzureAPIKey != "" && c.LLM.AzureDeployment == "" {
		return fmt.Errorf("AZURE_OPENAI_DEPLOYMENT_NAME is required when Azure OpenAI is configured")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
