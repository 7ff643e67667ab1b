package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopiesRoster(t *testing.T) {
	a := Activity{
		Name:            "Chess Club",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu"},
	}

	c := a.Clone()
	c.Participants[0] = "mutated@mergington.edu"

	assert.Equal(t, "michael@mergington.edu", a.Participants[0])
}

func TestClone_NilRosterBecomesEmpty(t *testing.T) {
	a := Activity{Name: "Chess Club", MaxParticipants: 12}

	c := a.Clone()

	require.NotNil(t, c.Participants)
	assert.Empty(t, c.Participants)
}

func TestIsFull(t *testing.T) {
	a := Activity{MaxParticipants: 2, Participants: []string{"a@mergington.edu"}}
	assert.False(t, a.IsFull())

	a.Participants = append(a.Participants, "b@mergington.edu")
	assert.True(t, a.IsFull())
}

func TestHasParticipant(t *testing.T) {
	a := Activity{Participants: []string{"michael@mergington.edu"}}

	assert.True(t, a.HasParticipant("michael@mergington.edu"))
	assert.False(t, a.HasParticipant("daniel@mergington.edu"))
}

func TestValidateSeed_Valid(t *testing.T) {
	seed := []Activity{
		{Name: "Chess Club", MaxParticipants: 12, Participants: []string{"michael@mergington.edu"}},
		{Name: "Tennis Club", MaxParticipants: 10},
	}

	assert.NoError(t, ValidateSeed(seed))
}

func TestValidateSeed_EmptyName(t *testing.T) {
	err := ValidateSeed([]Activity{{MaxParticipants: 10}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty name")
}

func TestValidateSeed_DuplicateName(t *testing.T) {
	seed := []Activity{
		{Name: "Chess Club", MaxParticipants: 12},
		{Name: "Chess Club", MaxParticipants: 12},
	}

	err := ValidateSeed(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate activity")
}

func TestValidateSeed_NonPositiveCapacity(t *testing.T) {
	err := ValidateSeed([]Activity{{Name: "Chess Club", MaxParticipants: 0}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestValidateSeed_RosterOverCapacity(t *testing.T) {
	seed := []Activity{{
		Name:            "Tennis Club",
		MaxParticipants: 1,
		Participants:    []string{"a@mergington.edu", "b@mergington.edu"},
	}}

	err := ValidateSeed(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capacity")
}

func TestValidateSeed_DuplicateParticipant(t *testing.T) {
	seed := []Activity{{
		Name:            "Chess Club",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "michael@mergington.edu"},
	}}

	err := ValidateSeed(seed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate participant")
}
