// Package registry provides the in-memory activity store.
//
// The registry is the sole owner of all activity records. The set of
// activities is fixed at construction; enroll and withdraw mutate rosters in
// place. A single RWMutex serializes access so that two concurrent enrolls
// on a near-full activity cannot both pass the capacity check.
package registry

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mergington/activities/internal/domain"
)

// Registry is a mutex-guarded map of activity name to record.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// New builds a registry from a seed dataset. The seed must satisfy the
// registry invariants (see domain.ValidateSeed).
func New(seed []domain.Activity) (*Registry, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("seed dataset is empty")
	}
	if err := domain.ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("invalid seed dataset: %w", err)
	}

	r := &Registry{
		activities: make(map[string]*domain.Activity, len(seed)),
	}
	for _, a := range seed {
		record := a.Clone()
		r.activities[a.Name] = &record
	}
	return r, nil
}

// List returns a deep copy of every activity record keyed by name.
func (r *Registry) List(_ context.Context) (map[string]domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]domain.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.Clone()
	}
	return out, nil
}

// Get returns a deep copy of a single activity record.
func (r *Registry) Get(_ context.Context, name string) (domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.Activity{}, domain.ErrActivityNotFound
	}
	return a.Clone(), nil
}

// Enroll appends email to the activity's roster. Checks run in a fixed
// order: existence, then duplicate, then capacity - a full activity still
// reports an existing member as already signed up.
func (r *Registry) Enroll(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if a.HasParticipant(email) {
		return domain.ErrAlreadyEnrolled
	}
	if a.IsFull() {
		return domain.ErrActivityFull
	}

	a.Participants = append(a.Participants, email)
	return nil
}

// Withdraw removes email from the activity's roster, preserving the order of
// the remaining participants.
func (r *Registry) Withdraw(_ context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	idx := slices.Index(a.Participants, email)
	if idx < 0 {
		return domain.ErrNotEnrolled
	}

	a.Participants = slices.Delete(a.Participants, idx, idx+1)
	return nil
}

// Size returns the number of activities in the registry.
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}
