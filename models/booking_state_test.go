package models

import (
	"testing"

	"gocamp/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusConfirmed))
	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusCancelled))
	assert.True(t, CanTransition(constants.BookingStatusConfirmed, constants.BookingStatusCompleted))
	assert.True(t, CanTransition(constants.BookingStatusConfirmed, constants.BookingStatusCancelled))

	assert.False(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusCompleted))
	assert.False(t, CanTransition(constants.BookingStatusCompleted, constants.BookingStatusCancelled))
	assert.False(t, CanTransition(constants.BookingStatusCancelled, constants.BookingStatusConfirmed))
	assert.False(t, CanTransition(constants.BookingStatusCompleted, constants.BookingStatusConfirmed))
	assert.False(t, CanTransition("unknown", constants.BookingStatusConfirmed))
}

func TestIsTerminalStatus(t *testing.T) {
	assert.True(t, IsTerminalStatus(constants.BookingStatusCompleted))
	assert.True(t, IsTerminalStatus(constants.BookingStatusCancelled))
	assert.False(t, IsTerminalStatus(constants.BookingStatusPending))
	assert.False(t, IsTerminalStatus(constants.BookingStatusConfirmed))
}

func TestCancellableStatuses(t *testing.T) {
	statuses := CancellableStatuses()
	assert.ElementsMatch(t, []string{constants.BookingStatusPending, constants.BookingStatusConfirmed}, statuses)
	for _, status := range statuses {
		assert.False(t, IsTerminalStatus(status))
	}
}
