package chain

import "math/rand"

// Source yields uniform variates in [0,1). Injecting the source keeps
// simulations reproducible: the same seed always produces the same
// trajectory.
type Source interface {
	Float64() float64
}

// NewSource returns a deterministic Source seeded with the given value.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// draw samples one successor of from using inverse-CDF sampling over the
// sorted state order. u must be in [0,1).
func (m *Model) draw(from State, u float64) State {
	row := m.rows[from]

	cum := 0.0
	last := from
	for _, s := range m.states {
		p := row[s]
		if p <= 0 {
			continue
		}
		last = s
		cum += p
		if u < cum {
			return s
		}
	}
	// Floating-point shortfall: the cumulative sum can land a hair below 1.
	return last
}
