package distributed

import (
	"errors"
	"fmt"
)

// Sentinel errors for the distributed protocol.
var (
	// ErrTooFewProcesses indicates a transport with fewer than two ranks.
	ErrTooFewProcesses = errors.New("distributed: need at least 2 processes")

	// ErrUnexpectedMessage indicates a worker received a message that does
	// not fit its current state.
	ErrUnexpectedMessage = errors.New("distributed: unexpected message")
)

// CoordinatorRank is the rank that holds the authoritative graph.
const CoordinatorRank = 0

// Role is the state machine a rank runs.
type Role int

const (
	RoleCoordinator Role = iota
	RoleWorker
)

// RoleOf maps a rank to its role.
func RoleOf(rank int) Role {
	if rank == CoordinatorRank {
		return RoleCoordinator
	}

	return RoleWorker
}

func (r Role) String() string {
	switch r {
	case RoleCoordinator:
		return "coordinator"
	case RoleWorker:
		return "worker"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}
