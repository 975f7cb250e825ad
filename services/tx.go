package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hms-backend/models"
)

// Booking statuses that hold a room for overlap purposes.
var activeBookingStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingCheckedIn,
}

// lockForUpdate adds a SELECT ... FOR UPDATE clause so precondition checks and
// the write they guard serialize on the target row. sqlite (used by the test
// suite) has no FOR UPDATE; its writes serialize on the database lock anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// dateOnly truncates a timestamp to a calendar date in UTC. All check-in and
// check-out values pass through here before comparison or storage.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// overlapExists reports whether any active booking on the room conflicts with
// the half-open range [checkIn, checkOut). Touching endpoints do not conflict,
// which allows same-day turnover. excludeBookingID lets a transition
// re-validate without colliding with the booking itself.
func overlapExists(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	q := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", activeBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)
	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
