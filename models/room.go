package models

import (
	"fmt"

	"gorm.io/gorm"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomReserved    RoomStatus = "reserved"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch RoomStatus(s) {
	case RoomAvailable, RoomReserved, RoomOccupied, RoomCleaning, RoomMaintenance:
		return RoomStatus(s), nil
	default:
		return "", fmt.Errorf("unknown room status: %s", s)
	}
}

// Room status is mutated only through the engine (services package); rooms are
// soft-deleted so bookings referencing them keep a valid target.
type Room struct {
	gorm.Model

	RoomNumber  string     `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	Floor       string     `json:"floor" gorm:"type:varchar(10)"`
	Capacity    int        `json:"capacity"`
	Price       float64    `json:"price"`
	Status      RoomStatus `json:"status" gorm:"type:varchar(32);default:available;index"`
	Description string     `json:"description" gorm:"type:text"`
}
