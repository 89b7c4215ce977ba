package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/okanara/markov/pkg/chain"
)

// ErrRunNotFound is returned when a run ID cannot be found in the store.
var ErrRunNotFound = errors.New("run not found")

// RunRecord is the persisted summary of one simulation run. The full
// trajectory is not stored, only the per-state visit counts and the final
// state, which is what the long-run frequency analysis needs.
type RunRecord struct {
	ID        string              `json:"id"`
	Chain     string              `json:"chain"`
	Start     chain.State         `json:"start"`
	Steps     int                 `json:"steps"`
	Seed      int64               `json:"seed"`
	Final     chain.State         `json:"final,omitempty"`
	Counts    map[chain.State]int `json:"counts,omitempty"`
	CreatedAt time.Time           `json:"created_at"`
}

// NewRunRecord creates a record with a fresh ID and timestamp.
func NewRunRecord(chainName string, start chain.State, steps int, seed int64) *RunRecord {
	return &RunRecord{
		ID:        uuid.NewString(),
		Chain:     chainName,
		Start:     start,
		Steps:     steps,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
	}
}

// Observe fills the outcome fields from a finished trajectory.
func (r *RunRecord) Observe(path chain.Trajectory) {
	r.Counts = path.Counts()
	if len(path) > 0 {
		r.Final = path[len(path)-1]
	}
}

// Frequency returns the empirical fraction of steps spent in s.
func (r *RunRecord) Frequency(s chain.State) float64 {
	if r.Steps == 0 {
		return 0
	}
	return float64(r.Counts[s]) / float64(r.Steps)
}
