package services

import (
	"fmt"

	"gorm.io/gorm"

	"hms-backend/models"
)

// RoomStatusService owns staff-driven room status changes: housekeeping
// (mark cleaned) and maintenance. Booking-driven changes (reserved, occupied,
// cleaning after checkout) go through the same applyRoomStatus helper from
// inside BookingService transactions, so every transition is enforced and
// audited in one place.
type RoomStatusService struct {
	DB *gorm.DB
}

func NewRoomStatusService(db *gorm.DB) *RoomStatusService {
	return &RoomStatusService{DB: db}
}

// applyRoomStatus moves a room to the target status inside the caller's
// transaction. Re-applying the current status is a no-op: no update, no audit
// row.
func applyRoomStatus(tx *gorm.DB, room *models.Room, target models.RoomStatus, reason string) error {
	if room.Status == target {
		return nil
	}

	if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", target).Error; err != nil {
		return fmt.Errorf("failed to update room %d status: %w", room.ID, err)
	}

	entry := models.RoomStatusLog{
		RoomID:     room.ID,
		FromStatus: room.Status,
		ToStatus:   target,
		Reason:     reason,
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to log room %d status change: %w", room.ID, err)
	}

	room.Status = target
	return nil
}

// staffRoomTransitions are the transitions a staff command may request
// directly. reserved/occupied/cleaning are booking-driven and cannot be set by
// hand; cleaning -> available is the explicit "mark cleaned" action and is
// never automatic.
var staffRoomTransitions = map[models.RoomStatus]map[models.RoomStatus]bool{
	models.RoomCleaning: {
		models.RoomAvailable:   true,
		models.RoomMaintenance: true,
	},
	models.RoomAvailable: {
		models.RoomMaintenance: true,
	},
	models.RoomReserved: {
		models.RoomMaintenance: true,
	},
	models.RoomMaintenance: {
		models.RoomAvailable: true,
	},
	models.RoomOccupied: {},
}

// ChangeStatus performs a staff room status action. The "no checked-in guest"
// precondition for maintenance is re-validated under a row lock at commit
// time, not just at request time.
func (s *RoomStatusService) ChangeStatus(roomID uint, target models.RoomStatus, reason string) (*models.Room, error) {
	var room models.Room

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			return err
		}

		// idempotent: same target is a no-op, not an error
		if room.Status == target {
			return nil
		}

		if target == models.RoomMaintenance {
			var occupied int64
			if err := tx.Model(&models.Booking{}).
				Where("room_id = ? AND status = ?", roomID, models.BookingCheckedIn).
				Count(&occupied).Error; err != nil {
				return fmt.Errorf("failed to check occupancy for room %d: %w", roomID, err)
			}
			if occupied > 0 || room.Status == models.RoomOccupied {
				return ErrRoomOccupied
			}
		}

		if !staffRoomTransitions[room.Status][target] {
			return ErrIllegalTransition
		}

		return applyRoomStatus(tx, &room, target, reason)
	})
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// History returns the audit trail of status transitions for a room, newest
// first.
func (s *RoomStatusService) History(roomID uint) ([]models.RoomStatusLog, error) {
	var logs []models.RoomStatusLog
	if err := s.DB.Where("room_id = ?", roomID).
		Order("id DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to load status history for room %d: %w", roomID, err)
	}
	return logs, nil
}
