package chain

import "math"

const (
	defaultStationaryTolerance = 1e-12
	defaultStationaryMaxIter   = 10000
)

type stationaryConfig struct {
	tolerance float64
	maxIter   int
}

// StationaryOption configures the fixed-point search.
type StationaryOption func(*stationaryConfig)

// WithTolerance sets the sup-norm distance between successive iterates at
// which the search is considered converged.
func WithTolerance(tol float64) StationaryOption {
	return func(c *stationaryConfig) {
		c.tolerance = tol
	}
}

// WithMaxIterations caps the number of power-iteration steps.
func WithMaxIterations(n int) StationaryOption {
	return func(c *stationaryConfig) {
		c.maxIter = n
	}
}

// Stationary computes a distribution π satisfying π = πT by power iteration
// from the uniform distribution. For an ergodic chain this fixed point is
// unique and reached from any start. Returns ErrNoConvergence when the
// iteration cap is hit first (periodic chains oscillate forever).
func (m *Model) Stationary(opts ...StationaryOption) (Distribution, error) {
	cfg := stationaryConfig{
		tolerance: defaultStationaryTolerance,
		maxIter:   defaultStationaryMaxIter,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	current := Uniform(m.states...)
	for i := 0; i < cfg.maxIter; i++ {
		next := m.step(current)

		// Renormalize to keep rounding drift from accumulating.
		if sum := next.Sum(); sum > 0 {
			for s := range next {
				next[s] /= sum
			}
		}

		if supDistance(current, next) < cfg.tolerance {
			return next, nil
		}
		current = next
	}
	return nil, ErrNoConvergence
}

// DetailedBalance reports whether pi satisfies the detailed-balance
// condition on the model: for every pair of states the probability flow is
// equal in both directions, π(a)·P(b|a) == π(b)·P(a|b) within tol.
// Detailed balance is sufficient for stationarity, not necessary.
func (m *Model) DetailedBalance(pi Distribution, tol float64) bool {
	for i, a := range m.states {
		for _, b := range m.states[i+1:] {
			forward := pi[a] * m.Prob(a, b)
			backward := pi[b] * m.Prob(b, a)
			if math.Abs(forward-backward) > tol {
				return false
			}
		}
	}
	return true
}

// IsErgodic reports whether the chain is irreducible and aperiodic, the
// condition under which a unique stationary distribution exists and is
// reached from any starting distribution.
func (m *Model) IsErgodic() bool {
	root := m.states[0]

	// Irreducible: the root reaches every state and every state reaches the
	// root, along edges of positive probability.
	depth, reached := m.bfs(root, false)
	if len(reached) != len(m.states) {
		return false
	}
	if _, back := m.bfs(root, true); len(back) != len(m.states) {
		return false
	}

	// Aperiodic: for an irreducible chain the period is the gcd of
	// depth(u)+1-depth(v) over all edges u->v.
	period := 0
	for _, u := range m.states {
		for v, p := range m.rows[u] {
			if p <= 0 {
				continue
			}
			period = gcd(period, depth[u]+1-depth[v])
		}
	}
	return period == 1
}

// bfs walks positive-probability edges from root, following them backwards
// when reversed is set. It returns the level of each reached state.
func (m *Model) bfs(root State, reversed bool) (map[State]int, map[State]bool) {
	depth := map[State]int{root: 0}
	seen := map[State]bool{root: true}
	queue := []State{root}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		for _, v := range m.states {
			p := m.Prob(u, v)
			if reversed {
				p = m.Prob(v, u)
			}
			if p <= 0 || seen[v] {
				continue
			}
			seen[v] = true
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}
	return depth, seen
}

func supDistance(a, b Distribution) float64 {
	max := 0.0
	for s, pb := range b {
		if d := math.Abs(pb - a[s]); d > max {
			max = d
		}
	}
	return max
}

func gcd(a, b int) int {
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
