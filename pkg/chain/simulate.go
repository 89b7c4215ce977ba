package chain

import (
	"context"
	"fmt"
)

// cancelCheckInterval controls how often Simulate polls the context. Long
// walks (hundreds of thousands of steps) stay cancellable without paying a
// select per step.
const cancelCheckInterval = 4096

// Simulate draws one sample path of the chain: starting from start, it takes
// steps transitions and returns the sequence of drawn states. The start
// state itself is not part of the trajectory, so len(result) == steps and
// steps == 0 yields an empty trajectory.
//
// The categorical draw at each step respects the exact row probabilities of
// the model. src supplies the uniform randomness; use NewSource with a fixed
// seed for reproducible runs.
func (m *Model) Simulate(ctx context.Context, start State, steps int, src Source) (Trajectory, error) {
	if steps < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSteps, steps)
	}
	if !m.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, start)
	}

	path := make(Trajectory, 0, steps)
	current := start
	for i := 0; i < steps; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		current = m.draw(current, src.Float64())
		path = append(path, current)
	}
	return path, nil
}
