package services

import "hms-backend/models"

// Legal booking lifecycle transitions. checked_out and cancelled are terminal;
// cancellation is only reachable before check-in (a checked-in guest can only
// be checked out).
var bookingTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.BookingPending: {
		models.BookingConfirmed: true,
		models.BookingCancelled: true,
	},
	models.BookingConfirmed: {
		models.BookingCheckedIn: true,
		models.BookingCancelled: true,
	},
	models.BookingCheckedIn: {
		models.BookingCheckedOut: true,
	},
	models.BookingCheckedOut: {},
	models.BookingCancelled:  {},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to models.BookingStatus) bool {
	allowed, ok := bookingTransitions[from]
	if !ok {
		return false
	}
	return allowed[to]
}
