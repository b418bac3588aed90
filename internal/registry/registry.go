// internal/registry/registry.go
package registry

import (
	"errors"
	"fmt"
	"sync"

	"activities-api/pkg/catalog"
)

var (
	ErrActivityNotFound = errors.New("ACTIVITY_NOT_FOUND")
	ErrAlreadySignedUp  = errors.New("ALREADY_SIGNED_UP")
	ErrNotSignedUp      = errors.New("NOT_SIGNED_UP")
)

// Registry is the in-memory collection of all activities, keyed by name.
// It is populated once from a catalog at startup and mutated in place by
// signup and unregister; no activity is created or deleted at runtime.
// Handlers run on concurrent goroutines, so the map is guarded by a RWMutex.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*catalog.Activity
}

// New builds a registry from a catalog. Duplicate activity names are an error.
func New(cat *catalog.Catalog) (*Registry, error) {
	activities := make(map[string]*catalog.Activity, len(cat.Activities))
	for i := range cat.Activities {
		a := cat.Activities[i]
		if _, exists := activities[a.Name]; exists {
			return nil, fmt.Errorf("duplicate activity name %q in catalog", a.Name)
		}
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		activities[a.Name] = &catalog.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return &Registry{activities: activities}, nil
}

// List returns a snapshot of every activity keyed by name. Participant
// slices are copied so callers cannot mutate registry state.
func (r *Registry) List() map[string]catalog.Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]catalog.Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = snapshot(a)
	}
	return out
}

// Get returns a snapshot of a single activity by name.
func (r *Registry) Get(name string) (catalog.Activity, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.activities[name]
	if !exists {
		return catalog.Activity{}, false
	}
	return snapshot(a), true
}

// Signup appends email to the activity's roster. Membership is checked with
// a linear scan so insertion order stays observable. max_participants is
// advisory metadata and is deliberately not enforced.
func (r *Registry) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return ErrActivityNotFound
	}
	for _, p := range activity.Participants {
		if p == email {
			return ErrAlreadySignedUp
		}
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// Unregister removes the first matching email from the activity's roster.
func (r *Registry) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, exists := r.activities[name]
	if !exists {
		return ErrActivityNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrNotSignedUp
}

// Len returns the number of activities in the registry.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.activities)
}

func snapshot(a *catalog.Activity) catalog.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)
	out := *a
	out.Participants = participants
	return out
}
