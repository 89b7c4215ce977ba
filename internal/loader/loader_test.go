package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okanara/markov/internal/loader"
	"github.com/okanara/markov/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coinTossYAML = `
name: coin-toss
description: Two-state chain from the coin-toss example.
start: heads
metadata:
  author: okanara
  tags: [teaching, two-state]
  difficulty: intro
states:
  heads:
    heads: 0.5
    tails: 0.5
  tails:
    heads: 0.6
    tails: 0.4
`

func TestParse_CoinToss(t *testing.T) {
	def, err := loader.Parse([]byte(coinTossYAML))
	require.NoError(t, err)

	assert.Equal(t, "coin-toss", def.Name)
	assert.Equal(t, chain.State("heads"), def.Start)
	assert.Equal(t, []chain.State{"heads", "tails"}, def.Model.States())
	assert.Equal(t, 0.6, def.Model.Prob("tails", "heads"))

	assert.Equal(t, "okanara", def.Meta.Author)
	assert.Equal(t, []string{"teaching", "two-state"}, def.Meta.Tags)
	assert.Equal(t, "intro", def.Meta.Extra["difficulty"])
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"broken yaml": "states: [",
		"no states":   "name: empty",
		"missing start": `
states:
  a:
    a: 1
`,
		"unknown start": `
start: b
states:
  a:
    a: 1
`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestParse_BadRowSurfacesModelError(t *testing.T) {
	_, err := loader.Parse([]byte(`
start: a
states:
  a:
    a: 0.9
`))
	assert.True(t, errors.Is(err, chain.ErrInvalidModel), "got %v", err)
}

func TestLoad_NameDefaultsToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weather.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
start: sunny
states:
  sunny:
    sunny: 0.8
    rainy: 0.2
  rainy:
    sunny: 0.4
    rainy: 0.6
`), 0644))

	def, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "weather", def.Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
