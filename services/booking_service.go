package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hms-backend/models"
	"hms-backend/utils"
)

// BookingService orchestrates the reservation engine: it runs the overlap
// check, the booking write and the room status consequence inside a single
// transaction so no caller ever observes one without the other.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries everything needed to open a booking. Status may
// be pending (public form), confirmed (staff), or checked_in (walk-in); any
// other value is rejected.
type CreateBookingInput struct {
	RoomID     uint
	GuestName  string
	GuestPhone string
	GuestEmail string
	CheckIn    time.Time
	CheckOut   time.Time
	Adults     int
	Children   int
	GuestList  []map[string]interface{}
	Status     models.BookingStatus
}

func getStringFromMap(m map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			if s, ok2 := v.(string); ok2 {
				return strings.TrimSpace(s)
			}
			return strings.TrimSpace(fmt.Sprintf("%v", v))
		}
	}
	return ""
}

// normalizeGuestList keeps only the fields we store for accompanying guests.
func normalizeGuestList(guestList []map[string]interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(guestList))
	for _, g := range guestList {
		name := getStringFromMap(g, "name", "fullName", "full_name")
		typ := getStringFromMap(g, "type", "guestType", "guest_type")
		if name == "" {
			continue
		}
		if typ == "" {
			typ = "Adult"
		}
		out = append(out, map[string]interface{}{
			"fullName": name,
			"type":     typ,
		})
	}
	return out
}

const maxReferenceAttempts = 5

func isDuplicateKeyErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique") || strings.Contains(lc, "constraint")
}

// CreateBooking validates the date range, verifies availability under a room
// row lock, freezes the total at the room's current nightly price and applies
// the room status consequence, all in one transaction. Walk-ins (status
// checked_in) occupy the room immediately; pending/confirmed bookings reserve
// it.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	ci, co := dateOnly(in.CheckIn), dateOnly(in.CheckOut)
	if !co.After(ci) {
		return nil, ErrInvalidRange
	}
	nights := int(co.Sub(ci).Hours() / 24)

	status := in.Status
	if status == "" {
		status = models.BookingPending
	}
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCheckedIn:
	default:
		return nil, ErrIllegalTransition
	}

	adults := in.Adults
	if adults <= 0 {
		adults = 1
	}
	children := in.Children
	if children < 0 {
		children = 0
	}

	accompanyingJSON, err := json.Marshal(normalizeGuestList(in.GuestList))
	if err != nil {
		return nil, fmt.Errorf("failed to encode guest list: %w", err)
	}

	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, in.RoomID).Error; err != nil {
			return err
		}
		if room.Status == models.RoomMaintenance {
			return ErrRoomUnavailable
		}

		conflict, err := overlapExists(tx, room.ID, ci, co, 0)
		if err != nil {
			return err
		}
		if conflict {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			RoomID:             room.ID,
			GuestName:          strings.TrimSpace(in.GuestName),
			GuestPhone:         strings.TrimSpace(in.GuestPhone),
			GuestEmail:         strings.TrimSpace(in.GuestEmail),
			CheckIn:            ci,
			CheckOut:           co,
			Nights:             nights,
			Adults:             adults,
			Children:           children,
			AccompanyingGuests: datatypes.JSON(accompanyingJSON),
			Status:             status,
			PaymentStatus:      models.PaymentPending,
			TotalAmount:        room.Price * float64(nights),
		}

		var createErr error
		for attempt := 0; attempt < maxReferenceAttempts; attempt++ {
			ref, genErr := utils.GenerateBookingReference()
			if genErr != nil {
				return genErr
			}
			booking.ReferenceCode = ref

			createErr = tx.Create(&booking).Error
			if createErr == nil {
				break
			}
			if isDuplicateKeyErr(createErr) {
				log.Printf("booking reference collision (attempt %d), retrying", attempt+1)
				booking.ID = 0
				continue
			}
			return fmt.Errorf("failed to create booking: %w", createErr)
		}
		if createErr != nil {
			return fmt.Errorf("failed to create booking after retries: %w", createErr)
		}

		if status == models.BookingCheckedIn {
			return applyRoomStatus(tx, &room, models.RoomOccupied, "walk-in check-in "+booking.ReferenceCode)
		}
		if room.Status == models.RoomAvailable {
			return applyRoomStatus(tx, &room, models.RoomReserved, "booking "+booking.ReferenceCode)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Room").First(&booking, booking.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload booking: %w", err)
	}
	return &booking, nil
}

// ChangeStatus drives the lifecycle state machine. Check-in re-runs the
// overlap check excluding the booking's own id, closing the race with
// bookings created between confirmation and arrival. Checkout never blocks on
// an outstanding balance; the caller reads Outstanding() and decides.
func (s *BookingService) ChangeStatus(bookingID uint, target models.BookingStatus) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}

		if !CanTransition(booking.Status, target) {
			return ErrIllegalTransition
		}

		var room models.Room
		if err := lockForUpdate(tx).First(&room, booking.RoomID).Error; err != nil {
			return err
		}

		switch target {
		case models.BookingCheckedIn:
			conflict, err := overlapExists(tx, booking.RoomID, booking.CheckIn, booking.CheckOut, booking.ID)
			if err != nil {
				return err
			}
			if conflict {
				return ErrRoomUnavailable
			}
		}

		if err := tx.Model(&booking).Update("status", target).Error; err != nil {
			return fmt.Errorf("failed to update booking %d status: %w", bookingID, err)
		}
		booking.Status = target

		switch target {
		case models.BookingConfirmed:
			if room.Status == models.RoomAvailable {
				return applyRoomStatus(tx, &room, models.RoomReserved, "booking "+booking.ReferenceCode)
			}
			return nil
		case models.BookingCheckedIn:
			return applyRoomStatus(tx, &room, models.RoomOccupied, "check-in "+booking.ReferenceCode)
		case models.BookingCheckedOut:
			// never straight to available: housekeeping marks the room
			// cleaned explicitly
			return applyRoomStatus(tx, &room, models.RoomCleaning, "check-out "+booking.ReferenceCode)
		case models.BookingCancelled:
			return s.releaseRoomIfIdle(tx, &room, booking.ID, "cancel "+booking.ReferenceCode)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// releaseRoomIfIdle returns a reserved room to available after a cancellation,
// but only when no other active booking still holds upcoming dates on it.
func (s *BookingService) releaseRoomIfIdle(tx *gorm.DB, room *models.Room, cancelledBookingID uint, reason string) error {
	if room.Status != models.RoomReserved {
		return nil
	}

	today := dateOnly(time.Now())
	var holders int64
	if err := tx.Model(&models.Booking{}).
		Where("room_id = ? AND id <> ?", room.ID, cancelledBookingID).
		Where("status IN ?", activeBookingStatuses).
		Where("check_out > ?", today).
		Count(&holders).Error; err != nil {
		return fmt.Errorf("failed to check remaining holds on room %d: %w", room.ID, err)
	}
	if holders > 0 {
		return nil
	}
	return applyRoomStatus(tx, room, models.RoomAvailable, reason)
}

// applyPayment adds an amount to the booking's paid total inside the caller's
// transaction and derives the payment status. PaidAmount may never exceed the
// frozen TotalAmount.
func applyPayment(tx *gorm.DB, booking *models.Booking, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if booking.Status == models.BookingCancelled {
		return ErrIllegalTransition
	}

	paid := booking.PaidAmount + amount
	if paid > booking.TotalAmount {
		return ErrInvalidAmount
	}

	status := models.PaymentPartial
	if paid >= booking.TotalAmount {
		status = models.PaymentPaid
	}

	if err := tx.Model(&models.Booking{}).Where("id = ?", booking.ID).
		Updates(map[string]interface{}{
			"paid_amount":    paid,
			"payment_status": status,
		}).Error; err != nil {
		return fmt.Errorf("failed to record payment on booking %d: %w", booking.ID, err)
	}

	booking.PaidAmount = paid
	booking.PaymentStatus = status
	return nil
}

// RecordPayment applies a payment against the booking's outstanding balance.
func (s *BookingService) RecordPayment(bookingID uint, amount float64) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&booking, bookingID).Error; err != nil {
			return err
		}
		return applyPayment(tx, &booking, amount)
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// GetByID loads a booking with its room for the admin console.
func (s *BookingService) GetByID(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.Preload("Room").First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// List returns bookings newest first, optionally filtered by status.
func (s *BookingService) List(status models.BookingStatus) ([]models.Booking, error) {
	q := s.DB.Preload("Room").Order("created_at DESC, id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
