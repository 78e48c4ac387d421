package config

import (
	"path/filepath"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvLoaded sync.Once

// envOverrides holds settings that win over the config file for a single run.
type envOverrides struct {
	Profile  string `env:"STORENAMER_PROFILE"`
	Provider string `env:"STORENAMER_PROVIDER"`
	APIKey   string `env:"STORENAMER_API_KEY"`
	Model    string `env:"STORENAMER_MODEL"`
	BaseURL  string `env:"STORENAMER_BASE_URL"`
	LogFile  string `env:"STORENAMER_LOG_FILE"`

	GeminiAPIKey    string `env:"GEMINI_API_KEY"`
	OpenAIAPIKey    string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`
	OllamaHost      string `env:"OLLAMA_HOST"`
}

func loadEnv() (envOverrides, error) {
	dotenvLoaded.Do(func() {
		// The .env file is optional
		_ = godotenv.Load()
	})

	var e envOverrides
	if err := env.Parse(&e); err != nil {
		return envOverrides{}, err
	}
	return e, nil
}

func (e envOverrides) apply(c *Config) {
	if e.LogFile != "" {
		c.logFileOverride = e.LogFile
	}
	if c.currentProfile == nil {
		return
	}
	p := c.currentProfile

	if e.Provider != "" {
		p.Provider = e.Provider
	}
	if e.Model != "" {
		p.Model = e.Model
	}
	if e.BaseURL != "" {
		p.BaseURL = e.BaseURL
	}

	provider := p.Provider
	if provider == "" {
		provider = DefaultProvider
	}
	if p.APIKey == "" {
		switch provider {
		case ProviderGemini:
			p.APIKey = e.GeminiAPIKey
		case ProviderOpenAI:
			p.APIKey = e.OpenAIAPIKey
		case ProviderAnthropic:
			p.APIKey = e.AnthropicAPIKey
		}
	}
	if provider == ProviderOllama && p.BaseURL == "" {
		p.BaseURL = e.OllamaHost
	}
	if e.APIKey != "" {
		p.APIKey = e.APIKey
	}
}

// LogPath returns where the log file should be written.
func (c *Config) LogPath() string {
	if c.logFileOverride != "" {
		return c.logFileOverride
	}
	if c.LogFile != "" {
		return c.LogFile
	}
	if c.path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(c.path), "storenamer.log")
}

// SetLogPath overrides the log file for this run.
func (c *Config) SetLogPath(path string) {
	c.logFileOverride = path
}
