package app

import (
	"context"
	"fmt"

	"github.com/rcase/plumbjobs/internal/model"
)

// Mode selects what placing a job on a day does.
type Mode string

const (
	// ModeMove reschedules the job in place.
	ModeMove Mode = "move"
	// ModeCopy duplicates the job onto the target day, for carryover work.
	ModeCopy Mode = "copy"
)

type placingState struct {
	jobID string
	mode  Mode
}

// Placement describes the scheduling engine's current state.
type Placement struct {
	Placing bool   `json:"placing"`
	JobID   string `json:"job_id,omitempty"`
	Mode    Mode   `json:"mode,omitempty"`
}

// Placement returns the scheduling engine's current state.
func (a *App) Placement() Placement {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.placing == nil {
		return Placement{}
	}
	return Placement{Placing: true, JobID: a.placing.jobID, Mode: a.placing.mode}
}

// EnterPlacing picks up a job for rescheduling. The engine enters the
// Placing state in move mode; picking up while already placing replaces the
// pending job.
func (a *App) EnterPlacing(jobID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.findJob(jobID) == nil {
		return fmt.Errorf("%w: job %s", ErrNotFound, jobID)
	}
	a.placing = &placingState{jobID: jobID, mode: ModeMove}
	return nil
}

// SetMode switches the pending placement between move and copy. A no-op when
// the engine is idle.
func (a *App) SetMode(mode Mode) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if mode != ModeMove && mode != ModeCopy {
		return fmt.Errorf("%w: invalid mode %q", ErrValidation, mode)
	}
	if a.placing != nil {
		a.placing.mode = mode
	}
	return nil
}

// CancelPlacing returns the engine to idle, discarding the pending job
// reference. No job is mutated.
func (a *App) CancelPlacing() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.placing = nil
}

// PlaceOnDay completes a pending placement onto the target day.
//
// In move mode the job's date changes in place; nothing else about it
// changes. In copy mode a deep, independent copy with a fresh id is
// prepended to the collection, its status reset to open and its creation
// time reset to now, and the original is untouched.
//
// On success the engine returns to idle and the selection context moves to
// the target day and the placed job. If the pending job was deleted while
// placing, the engine cancels back to idle and reports the missing job.
func (a *App) PlaceOnDay(ctx context.Context, targetDay string) (*model.Job, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.placing == nil {
		return nil, ErrNotPlacing
	}

	job := a.findJob(a.placing.jobID)
	if job == nil {
		id := a.placing.jobID
		a.placing = nil
		return nil, fmt.Errorf("%w: job %s was deleted while placing", ErrNotFound, id)
	}

	placed := job
	switch a.placing.mode {
	case ModeCopy:
		placed = job.Clone()
		placed.ID = model.NewID()
		placed.Date = targetDay
		placed.Status = model.StatusOpen
		placed.CreatedAt = a.now()
		a.jobs = append([]*model.Job{placed}, a.jobs...)
	default: // ModeMove
		job.Date = targetDay
	}

	a.placing = nil
	a.selection.SelectedDay = targetDay
	a.selection.SelectedJobID = placed.ID

	if err := a.save(ctx); err != nil {
		return nil, err
	}
	return placed.Clone(), nil
}
