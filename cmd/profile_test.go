package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/storenamer/internal/config"
)

func TestDeleteProfileMovesActive(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.Profile{
			"b": {Provider: config.ProviderOpenAI},
			"a": {Provider: config.ProviderGemini},
			"c": {Provider: config.ProviderOllama},
		},
		ActiveProfile: "b",
	}

	deleteProfile(cfg, "b")

	assert.NotContains(t, cfg.Profiles, "b")
	assert.Equal(t, "a", cfg.ActiveProfile)
}

func TestDeleteProfileKeepsActive(t *testing.T) {
	cfg := &config.Config{
		Profiles: map[string]config.Profile{
			"a": {Provider: config.ProviderGemini},
			"b": {Provider: config.ProviderOpenAI},
		},
		ActiveProfile: "a",
	}

	deleteProfile(cfg, "b")
	assert.Equal(t, "a", cfg.ActiveProfile)
	assert.Len(t, cfg.Profiles, 1)
}

func TestDeleteLastProfileRecreatesDefault(t *testing.T) {
	cfg := &config.Config{
		Profiles:      map[string]config.Profile{"only": {Provider: config.ProviderAnthropic}},
		ActiveProfile: "only",
	}

	deleteProfile(cfg, "only")

	assert.Equal(t, config.DefaultProfile, cfg.ActiveProfile)
	assert.Equal(t, config.ProviderGemini, cfg.Profiles[config.DefaultProfile].Provider)
}

func TestSortedProfileNames(t *testing.T) {
	cfg := &config.Config{Profiles: map[string]config.Profile{"z": {}, "m": {}, "a": {}}}

	assert.Equal(t, []string{"a", "m", "z"}, sortedProfileNames(cfg, ""))
	assert.Equal(t, []string{"a", "z"}, sortedProfileNames(cfg, "m"))
}
