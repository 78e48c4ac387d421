package core

import (
	"sync"

	"github.com/Rorical/storenamer/internal/models"
)

// GenerationState holds the phase, error message and names of the pipeline.
// All transitions are atomic.
type GenerationState struct {
	mu           sync.RWMutex
	phase        models.Phase
	errorMessage string
	names        []string
}

func NewGenerationState() *GenerationState {
	return &GenerationState{phase: models.Idle}
}

// Begin moves to Loading and clears the error. It returns false, leaving the
// state untouched, when a request is already loading.
func (gs *GenerationState) Begin() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if gs.phase == models.Loading {
		return false
	}
	gs.phase = models.Loading
	gs.errorMessage = ""
	return true
}

// Succeed replaces the names and moves to Success.
func (gs *GenerationState) Succeed(names []string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.phase = models.Success
	gs.errorMessage = ""
	gs.names = append([]string(nil), names...)
}

// Fail discards the names and moves to Failed.
func (gs *GenerationState) Fail(message string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	gs.phase = models.Failed
	gs.errorMessage = message
	gs.names = nil
}

func (gs *GenerationState) Phase() models.Phase {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return gs.phase
}

func (gs *GenerationState) Snapshot() models.Snapshot {
	gs.mu.RLock()
	defer gs.mu.RUnlock()
	return models.Snapshot{
		Phase:        gs.phase,
		ErrorMessage: gs.errorMessage,
		Names:        append([]string(nil), gs.names...),
	}
}
