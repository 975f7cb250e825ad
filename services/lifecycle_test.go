package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hms-backend/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to models.BookingStatus
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCheckedIn, false},
		{models.BookingConfirmed, models.BookingCheckedIn, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCheckedIn, models.BookingCheckedOut, true},
		{models.BookingCheckedIn, models.BookingCancelled, false},
		{models.BookingCheckedOut, models.BookingConfirmed, false},
		{models.BookingCheckedOut, models.BookingCheckedIn, false},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	all := []models.BookingStatus{
		models.BookingPending,
		models.BookingConfirmed,
		models.BookingCheckedIn,
		models.BookingCheckedOut,
		models.BookingCancelled,
	}
	for _, from := range all {
		if !from.Terminal() {
			continue
		}
		for _, to := range all {
			assert.False(t, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}
