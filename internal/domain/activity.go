package domain

import (
	"context"
	"fmt"
	"slices"
)

// Activity is a named extracurricular offering with a schedule, a capacity,
// and a roster of participant emails. Roster order is signup order. The name
// is the lookup key and never appears in the JSON record itself.
type Activity struct {
	Name            string   `json:"-" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

// Clone returns a deep copy of the activity. Callers of the registry only
// ever see clones, never the registry's own records.
func (a Activity) Clone() Activity {
	c := a
	c.Participants = slices.Clone(a.Participants)
	if c.Participants == nil {
		c.Participants = []string{}
	}
	return c
}

// IsFull reports whether the roster has reached capacity.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// ActivityRepository is the contract for the activity registry. Every method
// is safe for concurrent use; mutations are atomic with respect to a single
// record.
type ActivityRepository interface {
	List(ctx context.Context) (map[string]Activity, error)
	Get(ctx context.Context, name string) (Activity, error)
	Enroll(ctx context.Context, name, email string) error
	Withdraw(ctx context.Context, name, email string) error
}

// ValidateSeed checks that a seed dataset satisfies the registry invariants:
// non-empty unique names, positive capacities, no duplicate participants,
// and no roster over capacity.
func ValidateSeed(activities []Activity) error {
	seen := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		if a.Name == "" {
			return fmt.Errorf("activity with empty name")
		}
		if _, dup := seen[a.Name]; dup {
			return fmt.Errorf("duplicate activity %q", a.Name)
		}
		seen[a.Name] = struct{}{}

		if a.MaxParticipants <= 0 {
			return fmt.Errorf("activity %q: max_participants must be positive, got %d", a.Name, a.MaxParticipants)
		}
		if len(a.Participants) > a.MaxParticipants {
			return fmt.Errorf("activity %q: seed roster has %d participants, capacity is %d", a.Name, len(a.Participants), a.MaxParticipants)
		}

		members := make(map[string]struct{}, len(a.Participants))
		for _, email := range a.Participants {
			if _, dup := members[email]; dup {
				return fmt.Errorf("activity %q: duplicate participant %q", a.Name, email)
			}
			members[email] = struct{}{}
		}
	}
	return nil
}
