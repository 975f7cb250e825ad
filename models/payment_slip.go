package models

import "time"

type SlipStatus string

const (
	SlipPending  SlipStatus = "pending"
	SlipVerified SlipStatus = "verified"
	SlipRejected SlipStatus = "rejected"
)

// PaymentSlip tracks a transfer slip submitted against a booking. Slip image
// storage lives elsewhere; only the verification state is kept here.
type PaymentSlip struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reference string     `gorm:"uniqueIndex;size:64" json:"reference"`
	BookingID uint       `gorm:"index;not null" json:"booking_id"`
	Amount    float64    `json:"amount"`
	Status    SlipStatus `gorm:"type:varchar(32);default:pending;index" json:"status"`
	Note      string     `gorm:"size:255" json:"note"`

	VerifiedBy *uint      `json:"verified_by,omitempty"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`

	Booking Booking `gorm:"foreignKey:BookingID;references:ID" json:"booking,omitempty"`
}
