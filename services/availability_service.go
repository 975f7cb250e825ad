package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"hms-backend/models"
)

// AvailabilityService answers whether a room can take a booking for a date
// range. It is a pure query layer; the write-side re-checks happen inside the
// BookingService transactions using the same overlap predicate.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// IsAvailable reports whether the room is free for [checkIn, checkOut).
// excludeBookingID is 0 for new bookings; transitions pass the booking's own
// id so it does not conflict with itself.
func (s *AvailabilityService) IsAvailable(roomID uint, checkIn, checkOut time.Time, excludeBookingID uint) (bool, error) {
	ci, co := dateOnly(checkIn), dateOnly(checkOut)
	if !co.After(ci) {
		return false, ErrInvalidRange
	}

	conflict, err := overlapExists(s.DB, roomID, ci, co, excludeBookingID)
	if err != nil {
		return false, fmt.Errorf("failed to check availability for room %d: %w", roomID, err)
	}
	return !conflict, nil
}

// GetAvailableRooms lists rooms that can host the given party for the range:
// enough capacity, not under maintenance, and no active booking overlapping
// the half-open interval. Ordered by price then room number for deterministic
// display.
func (s *AvailabilityService) GetAvailableRooms(checkIn, checkOut time.Time, guests int) ([]models.Room, error) {
	ci, co := dateOnly(checkIn), dateOnly(checkOut)
	if !co.After(ci) {
		return nil, ErrInvalidRange
	}
	if guests < 1 {
		guests = 1
	}

	conflicting := s.DB.Model(&models.Booking{}).
		Select("1").
		Where("bookings.room_id = rooms.id").
		Where("bookings.status IN ?", activeBookingStatuses).
		Where("bookings.check_in < ? AND bookings.check_out > ?", co, ci)

	var rooms []models.Room
	err := s.DB.Model(&models.Room{}).
		Where("capacity >= ?", guests).
		Where("status <> ?", models.RoomMaintenance).
		Where("NOT EXISTS (?)", conflicting).
		Order("price ASC, room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}
