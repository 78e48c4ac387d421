package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const (
	ProviderGemini    = "gemini"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"

	DefaultProvider = ProviderGemini
	DefaultProfile  = "default"
)

var defaultModels = map[string]string{
	ProviderGemini:    "gemini-1.5-flash",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderAnthropic: "claude-3-5-haiku-latest",
	ProviderOllama:    "llama3.2",
}

// Providers returns the supported provider names in a stable order.
func Providers() []string {
	names := make([]string, 0, len(defaultModels))
	for name := range defaultModels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultModel returns the model used when a profile leaves Model empty.
func DefaultModel(provider string) string {
	return defaultModels[provider]
}

type Profile struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key,omitempty"`
	BaseURL  string `json:"base_url,omitempty"`
	Model    string `json:"model"`
}

// NeedsAPIKey reports whether the provider requires credentials.
func (p Profile) NeedsAPIKey() bool {
	return p.Provider != ProviderOllama
}

type Config struct {
	Profiles        map[string]Profile `json:"profiles"`
	ActiveProfile   string             `json:"active_profile"`
	LogFile         string             `json:"log_file,omitempty"`
	currentProfile  *Profile
	path            string
	logFileOverride string
	env             envOverrides
}

func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom loads (or creates) the config file at configPath and applies
// environment overrides to the active profile.
func LoadConfigFrom(configPath string) (*Config, error) {
	if err := ensureConfigDir(configPath); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config, err := loadConfigFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	config.path = configPath

	env, err := loadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	config.env = env
	if env.Profile != "" {
		config.ActiveProfile = env.Profile
	}

	if err := config.setCurrentProfile(); err != nil {
		return nil, fmt.Errorf("failed to set current profile: %w", err)
	}

	return config, nil
}

func (c *Config) IsValid() bool {
	if c.currentProfile == nil {
		return false
	}
	if !c.currentProfile.NeedsAPIKey() {
		return true
	}
	return c.currentProfile.APIKey != ""
}

// Current returns a copy of the active profile with defaults filled in.
func (c *Config) Current() Profile {
	if c.currentProfile == nil {
		return Profile{Provider: DefaultProvider, Model: DefaultModel(DefaultProvider)}
	}
	p := *c.currentProfile
	if p.Provider == "" {
		p.Provider = DefaultProvider
	}
	if p.Model == "" {
		p.Model = DefaultModel(p.Provider)
	}
	return p
}

func (c *Config) GetProvider() string {
	return c.Current().Provider
}

func (c *Config) GetAPIKey() string {
	return c.Current().APIKey
}

func (c *Config) GetModel() string {
	return c.Current().Model
}

func (c *Config) GetBaseURL() string {
	return c.Current().BaseURL
}

// OverrideModel replaces the model of the active profile for this run only.
func (c *Config) OverrideModel(model string) {
	if c.currentProfile == nil || model == "" {
		return
	}
	c.currentProfile.Model = model
}

// UseProfile makes name the active profile for this run without saving.
func (c *Config) UseProfile(name string) error {
	if _, exists := c.Profiles[name]; !exists {
		return fmt.Errorf("profile '%s' does not exist", name)
	}
	c.ActiveProfile = name
	return c.setCurrentProfile()
}

// Reload re-resolves the active profile after Profiles or ActiveProfile changed.
func (c *Config) Reload() error {
	return c.setCurrentProfile()
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string {
	return c.path
}

func getConfigPath() (string, error) {
	var configDir string

	// Use STORENAMER_HOME if set, otherwise use user's home directory
	if home := os.Getenv("STORENAMER_HOME"); home != "" {
		configDir = home
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = homeDir
	}

	return filepath.Join(configDir, ".storenamer", "config.json"), nil
}

func ensureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	return os.MkdirAll(configDir, 0755)
}

func loadConfigFile(configPath string) (*Config, error) {
	// If config file doesn't exist, create default
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// NewDefaultConfig returns the config written on first run.
func NewDefaultConfig() *Config {
	return &Config{
		Profiles: map[string]Profile{
			DefaultProfile: {
				Provider: DefaultProvider,
				Model:    DefaultModel(DefaultProvider),
			},
		},
		ActiveProfile: DefaultProfile,
	}
}

func createDefaultConfig(configPath string) (*Config, error) {
	config := NewDefaultConfig()

	if err := saveConfig(config, configPath); err != nil {
		return nil, err
	}

	return config, nil
}

func saveConfig(config *Config, configPath string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Save writes the config back to the file it was loaded from. Overrides applied
// to the active profile are not persisted.
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		var err error
		configPath, err = getConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	return saveConfig(c, configPath)
}

func (c *Config) setCurrentProfile() error {
	if len(c.Profiles) == 0 {
		return fmt.Errorf("no profiles defined")
	}

	profile, exists := c.Profiles[c.ActiveProfile]
	if !exists {
		// Fall back to the first profile by name so the choice is stable
		names := make([]string, 0, len(c.Profiles))
		for name := range c.Profiles {
			names = append(names, name)
		}
		sort.Strings(names)
		c.ActiveProfile = names[0]
		profile = c.Profiles[names[0]]
	}

	c.currentProfile = &profile
	c.env.apply(c)
	return nil
}
