package models

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("unknown booking status: %s", s)
	}
}

// Active reports whether the booking still holds its room for overlap purposes.
func (s BookingStatus) Active() bool {
	return s == BookingPending || s == BookingConfirmed || s == BookingCheckedIn
}

// Terminal statuses admit no further transition.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Booking rows are never deleted; the lifecycle status is the audit trail.
// TotalAmount is frozen at creation so later room price edits do not change
// existing bookings. CheckOut is exclusive (half-open interval).
type Booking struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:32" json:"reference_code"`
	RoomID        uint   `gorm:"index;column:room_id" json:"room_id"`

	GuestName  string `gorm:"size:255" json:"guest_name"`
	GuestPhone string `gorm:"size:50" json:"guest_phone"`
	GuestEmail string `gorm:"size:150" json:"guest_email"`

	CheckIn  time.Time `gorm:"column:check_in;index" json:"check_in"`
	CheckOut time.Time `gorm:"column:check_out;index" json:"check_out"`
	Nights   int       `json:"nights"`

	Adults   int `gorm:"default:1" json:"adults"`
	Children int `gorm:"default:0" json:"children"`

	AccompanyingGuests datatypes.JSON `gorm:"column:accompanying_guests" json:"accompanying_guests,omitempty"`

	Status        BookingStatus `gorm:"type:varchar(32);index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(32);default:pending" json:"payment_status"`
	TotalAmount   float64       `gorm:"column:total_amount" json:"total_amount"`
	PaidAmount    float64       `gorm:"column:paid_amount;default:0" json:"paid_amount"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// Outstanding is the unpaid balance; checkout with a positive balance is
// allowed, the caller decides whether to warn.
func (b *Booking) Outstanding() float64 {
	out := b.TotalAmount - b.PaidAmount
	if out < 0 {
		return 0
	}
	return out
}
