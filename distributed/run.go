package distributed

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/transport"
)

// Run selects the role from tr.Rank() and runs its state machine. g is used
// only on the coordinator; workers build their own graph from the received
// topology and ignore it.
func Run(ctx context.Context, tr transport.Transport, g *core.Graph, budget int, opts ...Option) (*Report, error) {
	if tr.Size() < 2 {
		return nil, fmt.Errorf("Run(size=%d): %w", tr.Size(), ErrTooFewProcesses)
	}

	switch RoleOf(tr.Rank()) {
	case RoleCoordinator:
		return NewCoordinator(tr, g, opts...).Run(ctx)
	default:
		w, err := NewWorker(tr, budget, opts...)
		if err != nil {
			return nil, err
		}
		return w.Run(ctx)
	}
}
