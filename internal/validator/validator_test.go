package validator_test

import (
	"testing"

	"github.com/okanara/markov/internal/validator"
	"github.com/okanara/markov/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func model(t *testing.T, rows map[chain.State]chain.Distribution) *chain.Model {
	t.Helper()
	m, err := chain.New(rows)
	require.NoError(t, err)
	return m
}

func TestValidateChain_Clean(t *testing.T) {
	m := model(t, map[chain.State]chain.Distribution{
		"heads": {"heads": 0.5, "tails": 0.5},
		"tails": {"heads": 0.6, "tails": 0.4},
	})

	report := validator.ValidateChain(m, "heads")
	assert.NoError(t, report.Err())
	assert.Empty(t, report.Warnings)
}

func TestValidateChain_Unreachable(t *testing.T) {
	m := model(t, map[chain.State]chain.Distribution{
		"a": {"a": 1},
		"b": {"a": 1},
	})

	report := validator.ValidateChain(m, "a")
	require.Error(t, report.Err())
	assert.Contains(t, report.Err().Error(), `state "b" is unreachable`)
}

func TestValidateChain_AbsorbingWarning(t *testing.T) {
	m := model(t, map[chain.State]chain.Distribution{
		"play": {"play": 0.9, "done": 0.1},
		"done": {"done": 1},
	})

	report := validator.ValidateChain(m, "play")
	assert.NoError(t, report.Err())
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "absorbing")
}

func TestValidateChain_NonErgodicWarning(t *testing.T) {
	m := model(t, map[chain.State]chain.Distribution{
		"a": {"b": 1},
		"b": {"a": 1},
	})

	report := validator.ValidateChain(m, "a")
	assert.NoError(t, report.Err())
	require.NotEmpty(t, report.Warnings)
	assert.Contains(t, report.Warnings[0], "not ergodic")
}

func TestValidateChain_UnknownStart(t *testing.T) {
	m := model(t, map[chain.State]chain.Distribution{
		"a": {"a": 1},
	})

	report := validator.ValidateChain(m, "zz")
	assert.Error(t, report.Err())
}
