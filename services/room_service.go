package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"hms-backend/models"
)

// RoomService covers administrative room inventory actions. Status changes do
// not go through here; they belong to RoomStatusService and the booking
// engine.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return fmt.Errorf("room number is required")
	}
	if room.Capacity <= 0 {
		room.Capacity = 1
	}
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Delete soft-deletes a room. Rooms with an active booking cannot be removed.
func (s *RoomService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var active int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ?", id, activeBookingStatuses).
			Count(&active).Error; err != nil {
			return fmt.Errorf("failed to check bookings for room %d: %w", id, err)
		}
		if active > 0 {
			return ErrRoomOccupied
		}
		return tx.Delete(&models.Room{}, id).Error
	})
}
