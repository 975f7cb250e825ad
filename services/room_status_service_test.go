package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/models"
)

func TestMaintenanceBlockedWhileOccupied(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomStatusService(db)
	bookings := NewBookingService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
		Status:   models.BookingCheckedIn,
	})
	require.NoError(t, err)

	_, err = rooms.ChangeStatus(room.ID, models.RoomMaintenance, "ac repair")
	assert.ErrorIs(t, err, ErrRoomOccupied)

	_, err = bookings.ChangeStatus(booking.ID, models.BookingCheckedOut)
	require.NoError(t, err)
	require.Equal(t, models.RoomCleaning, reloadRoom(t, db, room.ID).Status)

	updated, err := rooms.ChangeStatus(room.ID, models.RoomAvailable, "cleaned")
	require.NoError(t, err)
	require.Equal(t, models.RoomAvailable, updated.Status)

	// with nobody checked in the same maintenance request now succeeds
	updated, err = rooms.ChangeStatus(room.ID, models.RoomMaintenance, "ac repair")
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, updated.Status)

	updated, err = rooms.ChangeStatus(room.ID, models.RoomAvailable, "repair done")
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, updated.Status)
}

func TestCleaningRequiresExplicitCompletion(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomStatusService(db)
	bookings := NewBookingService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 2),
		Status:   models.BookingCheckedIn,
	})
	require.NoError(t, err)
	_, err = bookings.ChangeStatus(booking.ID, models.BookingCheckedOut)
	require.NoError(t, err)

	require.Equal(t, models.RoomCleaning, reloadRoom(t, db, room.ID).Status)

	updated, err := rooms.ChangeStatus(room.ID, models.RoomAvailable, "cleaned")
	require.NoError(t, err)
	assert.Equal(t, models.RoomAvailable, updated.Status)
}

func TestStaffStatusIdempotent(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomStatusService(db)
	room := createRoom(t, db, "101", 2, 1200)

	first, err := rooms.ChangeStatus(room.ID, models.RoomMaintenance, "repaint")
	require.NoError(t, err)
	second, err := rooms.ChangeStatus(room.ID, models.RoomMaintenance, "repaint")
	require.NoError(t, err)
	assert.Equal(t, first.Status, second.Status)

	// re-applying the same target writes no duplicate audit row
	history, err := rooms.History(room.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.RoomAvailable, history[0].FromStatus)
	assert.Equal(t, models.RoomMaintenance, history[0].ToStatus)
	assert.Equal(t, "repaint", history[0].Reason)
}

func TestStaffCannotForceBookingDrivenStatuses(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomStatusService(db)
	room := createRoom(t, db, "101", 2, 1200)

	for _, target := range []models.RoomStatus{
		models.RoomOccupied, models.RoomReserved, models.RoomCleaning,
	} {
		_, err := rooms.ChangeStatus(room.ID, target, "manual override")
		assert.ErrorIs(t, err, ErrIllegalTransition, "available -> %s", target)
	}
}

func TestMaintenanceFromReserved(t *testing.T) {
	db := newTestDB(t)
	rooms := NewRoomStatusService(db)
	bookings := NewBookingService(db)
	room := createRoom(t, db, "101", 2, 1200)

	_, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)
	require.Equal(t, models.RoomReserved, reloadRoom(t, db, room.ID).Status)

	// nobody is checked in, so maintenance is allowed even while reserved
	updated, err := rooms.ChangeStatus(room.ID, models.RoomMaintenance, "leak")
	require.NoError(t, err)
	assert.Equal(t, models.RoomMaintenance, updated.Status)
}
