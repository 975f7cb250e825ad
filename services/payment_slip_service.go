package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hms-backend/models"
)

// PaymentSlipService handles transfer-slip verification for bookings. A
// verified slip applies its amount as a payment in the same transaction, so a
// slip can never be marked verified without the booking balance moving.
type PaymentSlipService struct {
	DB *gorm.DB
}

func NewPaymentSlipService(db *gorm.DB) *PaymentSlipService {
	return &PaymentSlipService{DB: db}
}

// Submit registers a pending slip against a booking.
func (s *PaymentSlipService) Submit(bookingID uint, amount float64, note string) (*models.PaymentSlip, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		return nil, err
	}
	if booking.Status == models.BookingCancelled {
		return nil, ErrIllegalTransition
	}

	slip := models.PaymentSlip{
		Reference: uuid.NewString(),
		BookingID: booking.ID,
		Amount:    amount,
		Status:    models.SlipPending,
		Note:      strings.TrimSpace(note),
	}
	if err := s.DB.Create(&slip).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment slip: %w", err)
	}
	return &slip, nil
}

// Verify settles a pending slip. Approving applies the amount to the booking;
// rejecting only marks the slip. A slip can be settled exactly once.
func (s *PaymentSlipService) Verify(slipID uint, adminID uint, approve bool) (*models.PaymentSlip, error) {
	var slip models.PaymentSlip

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).First(&slip, slipID).Error; err != nil {
			return err
		}
		if slip.Status != models.SlipPending {
			return ErrSlipProcessed
		}

		target := models.SlipRejected
		if approve {
			var booking models.Booking
			if err := lockForUpdate(tx).First(&booking, slip.BookingID).Error; err != nil {
				return err
			}
			if err := applyPayment(tx, &booking, slip.Amount); err != nil {
				return err
			}
			target = models.SlipVerified
		}

		now := time.Now().UTC()
		if err := tx.Model(&models.PaymentSlip{}).Where("id = ?", slip.ID).
			Updates(map[string]interface{}{
				"status":      target,
				"verified_by": adminID,
				"verified_at": now,
			}).Error; err != nil {
			return fmt.Errorf("failed to settle payment slip %d: %w", slip.ID, err)
		}

		slip.Status = target
		slip.VerifiedBy = &adminID
		slip.VerifiedAt = &now
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &slip, nil
}

// List returns slips newest first, optionally filtered by status.
func (s *PaymentSlipService) List(status models.SlipStatus) ([]models.PaymentSlip, error) {
	q := s.DB.Preload("Booking").Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var slips []models.PaymentSlip
	if err := q.Find(&slips).Error; err != nil {
		return nil, fmt.Errorf("failed to list payment slips: %w", err)
	}
	return slips, nil
}
