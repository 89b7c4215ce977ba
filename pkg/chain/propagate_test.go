package chain_test

import (
	"math"
	"testing"

	"github.com/okanara/markov/pkg/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropagate_IdentityAtStepZero(t *testing.T) {
	m := coinToss(t)
	initial := chain.Distribution{"heads": 0.25, "tails": 0.75}

	seq, err := m.Propagate(initial, 10)
	require.NoError(t, err)

	assert.Len(t, seq, 11, "propagate must return steps+1 snapshots")
	assert.Equal(t, initial, seq[0])

	// Snapshots are stable copies: mutating the input afterwards must not
	// reach into the returned sequence.
	initial["heads"] = 0
	assert.Equal(t, 0.25, seq[0]["heads"])
}

func TestPropagate_SingleStep(t *testing.T) {
	m := coinToss(t)

	// Starting surely at heads: p' = 0.5·1 + 0.6·0 = 0.5.
	seq, err := m.Propagate(chain.Point("heads"), 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, seq[1]["heads"], 1e-15)
	assert.InDelta(t, 0.5, seq[1]["tails"], 1e-15)

	// Starting surely at tails: p' = 0.6.
	seq, err = m.Propagate(chain.Point("tails"), 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, seq[1]["heads"], 1e-15)
	assert.InDelta(t, 0.4, seq[1]["tails"], 1e-15)
}

func TestPropagate_MassConserved(t *testing.T) {
	m := coinToss(t)

	seq, err := m.Propagate(chain.Uniform("heads", "tails"), 50)
	require.NoError(t, err)
	for i, d := range seq {
		if math.Abs(d.Sum()-1) > 1e-9 {
			t.Fatalf("snapshot %d lost mass: sum = %v", i, d.Sum())
		}
	}
}

// TestPropagate_Convergence verifies the steady-state guarantee: from either
// deterministic start the marginals converge to p(heads) = 6/11.
func TestPropagate_Convergence(t *testing.T) {
	m := coinToss(t)

	for _, start := range []chain.State{"heads", "tails"} {
		seq, err := m.Propagate(chain.Point(start), 200)
		require.NoError(t, err)

		final := seq[len(seq)-1]
		assert.InDelta(t, 6.0/11.0, final["heads"], 1e-6, "start %s", start)
		assert.InDelta(t, 5.0/11.0, final["tails"], 1e-6, "start %s", start)
	}
}

func TestPropagate_NegativeSteps(t *testing.T) {
	m := coinToss(t)

	_, err := m.Propagate(chain.Point("heads"), -3)
	assert.ErrorIs(t, err, chain.ErrNegativeSteps)
}

func TestPropagate_InvalidInitial(t *testing.T) {
	m := coinToss(t)

	cases := map[string]chain.Distribution{
		"empty":         {},
		"underweight":   {"heads": 0.5, "tails": 0.4},
		"unknown state": {"heads": 0.5, "edge": 0.5},
		"negative mass": {"heads": 1.5, "tails": -0.5},
	}
	for name, initial := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := m.Propagate(initial, 5)
			assert.ErrorIs(t, err, chain.ErrInvalidDistribution)
		})
	}
}
