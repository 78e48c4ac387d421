package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/storenamer/internal/clipboard"
	"github.com/Rorical/storenamer/internal/core"
	"github.com/Rorical/storenamer/internal/llm"
	"github.com/Rorical/storenamer/internal/logging"
)

func fixedGenerator(reply string, err error) llm.Generator {
	return llm.GeneratorFunc(func(context.Context, string, string) (string, error) {
		return reply, err
	})
}

func TestRunGeneratePrintsNames(t *testing.T) {
	var out bytes.Buffer
	mem := &clipboard.Memory{}

	err := runGenerate(context.Background(), generateOptions{
		out:         &out,
		clipboard:   mem,
		generator:   fixedGenerator("Luna Boutique\n\nStarlight Goods\nCozy Corner  \n", nil),
		model:       "gemini-1.5-flash",
		description: "boutique for handmade jewelry",
		copyIndex:   2,
		logger:      logging.Discard(),
	})
	require.NoError(t, err)

	assert.Equal(t, "Luna Boutique\nStarlight Goods\nCozy Corner\n", out.String())
	assert.Equal(t, "Starlight Goods", mem.Last)
}

func TestRunGenerateCopyOutOfRange(t *testing.T) {
	var out bytes.Buffer
	err := runGenerate(context.Background(), generateOptions{
		out:         &out,
		clipboard:   &clipboard.Memory{},
		generator:   fixedGenerator("Only One", nil),
		description: "bakery",
		copyIndex:   3,
		logger:      logging.Discard(),
	})
	assert.ErrorContains(t, err, "out of range")
	assert.Equal(t, "Only One\n", out.String())
}

func TestRunGenerateErrors(t *testing.T) {
	tests := []struct {
		name        string
		generator   llm.Generator
		description string
		check       func(t *testing.T, err error)
	}{
		{
			name:        "blank description",
			generator:   fixedGenerator("x", nil),
			description: "  \n",
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "description is empty")
			},
		},
		{
			name:        "not configured",
			description: "bakery",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, core.ErrNotConfigured)
			},
		},
		{
			name:        "request failed",
			generator:   fixedGenerator("", errors.New("503 service unavailable")),
			description: "bakery",
			check: func(t *testing.T, err error) {
				var reqErr *core.RequestError
				require.ErrorAs(t, err, &reqErr)
				assert.Contains(t, err.Error(), "503")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := runGenerate(context.Background(), generateOptions{
				out:         &bytes.Buffer{},
				clipboard:   &clipboard.Memory{},
				generator:   tt.generator,
				description: tt.description,
				logger:      logging.Discard(),
			})
			tt.check(t, err)
		})
	}
}

func TestReadDescription(t *testing.T) {
	got, err := readDescription(nil, strings.NewReader("vintage vinyl\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "vintage vinyl", got)

	got, err = readDescription([]string{"tea", " house "}, strings.NewReader("ignored\n"))
	require.NoError(t, err)
	assert.Equal(t, "tea  house ", got)
}

func TestRunGenerateStdinPrompt(t *testing.T) {
	description, err := readDescription(nil, strings.NewReader("vintage vinyl\n"))
	require.NoError(t, err)

	var prompt string
	gen := llm.GeneratorFunc(func(_ context.Context, _, instruction string) (string, error) {
		prompt = instruction
		return "Groove Cellar", nil
	})

	var out bytes.Buffer
	err = runGenerate(context.Background(), generateOptions{
		out:         &out,
		clipboard:   &clipboard.Memory{},
		generator:   gen,
		description: description,
		logger:      logging.Discard(),
	})
	require.NoError(t, err)

	assert.Equal(t, core.BuildPrompt("vintage vinyl"), prompt)
	assert.NotContains(t, prompt, "vinyl\n")
}
