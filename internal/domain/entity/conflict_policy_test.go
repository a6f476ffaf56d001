package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConflictPolicy(t *testing.T) {
	p, err := ParseConflictPolicy("")
	require.NoError(t, err)
	assert.Equal(t, ConflictPolicyAll, p)

	p, err = ParseConflictPolicy("ignore_inactive")
	require.NoError(t, err)
	assert.Equal(t, ConflictPolicyIgnoreInactive, p)

	_, err = ParseConflictPolicy("sometimes")
	assert.Error(t, err)
}

func TestConflictPolicy_Blocks(t *testing.T) {
	tests := []struct {
		policy ConflictPolicy
		status BookingStatus
		want   bool
	}{
		{ConflictPolicyAll, BookingStatusCancelled, true},
		{ConflictPolicyAll, BookingStatusCompleted, true},
		{ConflictPolicyIgnoreCancelled, BookingStatusCancelled, false},
		{ConflictPolicyIgnoreCancelled, BookingStatusCompleted, true},
		{ConflictPolicyIgnoreCancelled, BookingStatusPending, true},
		{ConflictPolicyIgnoreInactive, BookingStatusCancelled, false},
		{ConflictPolicyIgnoreInactive, BookingStatusCompleted, false},
		{ConflictPolicyIgnoreInactive, BookingStatusConfirmed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy)+"/"+tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.policy.Blocks(tt.status))
		})
	}
}
