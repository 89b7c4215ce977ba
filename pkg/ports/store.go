package ports

import (
	"context"

	"github.com/okanara/markov/pkg/domain"
)

// RunStore persists simulation run records. Implementations must return
// domain.ErrRunNotFound from Load when the ID is unknown.
type RunStore interface {
	Save(ctx context.Context, run *domain.RunRecord) error
	Load(ctx context.Context, id string) (*domain.RunRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]string, error)
}
