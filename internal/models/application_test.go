package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	assert.True(t, ApplicationPending.Valid())
	assert.True(t, ApplicationShortlisted.Valid())
	assert.True(t, ApplicationAccepted.Valid())
	assert.True(t, ApplicationRejected.Valid())
	assert.False(t, ApplicationStatus("APPROVED").Valid())
	assert.False(t, ApplicationStatus("").Valid())
	assert.False(t, ApplicationStatus("pending").Valid())
}

func TestCanTransition(t *testing.T) {
	statuses := []ApplicationStatus{
		ApplicationPending, ApplicationShortlisted, ApplicationAccepted, ApplicationRejected,
	}

	// ACCEPTED is terminal.
	for _, to := range statuses {
		want := to == ApplicationAccepted
		assert.Equal(t, want, CanTransition(ApplicationAccepted, to), "ACCEPTED -> %s", to)
	}

	// Every non-terminal state may be overwritten with any valid status,
	// including moving REJECTED back to an earlier state.
	for _, from := range []ApplicationStatus{ApplicationPending, ApplicationShortlisted, ApplicationRejected} {
		for _, to := range statuses {
			assert.True(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	assert.False(t, CanTransition(ApplicationPending, "WITHDRAWN"))
	assert.False(t, CanTransition(ApplicationPending, ""))
}
