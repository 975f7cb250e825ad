package models

import "time"

// RoomStatusLog records every real room status transition. Idempotent no-op
// applications write no row.
type RoomStatusLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	RoomID     uint       `gorm:"index;not null" json:"room_id"`
	FromStatus RoomStatus `gorm:"type:varchar(32)" json:"from_status"`
	ToStatus   RoomStatus `gorm:"type:varchar(32)" json:"to_status"`
	Reason     string     `gorm:"size:255" json:"reason"`
}
