package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms-backend/models"
)

func TestSubmitSlip(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	slips := NewPaymentSlipService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)

	_, err = slips.Submit(booking.ID, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	slip, err := slips.Submit(booking.ID, 1200, "transfer 14:02")
	require.NoError(t, err)
	assert.Equal(t, models.SlipPending, slip.Status)
	assert.NotEmpty(t, slip.Reference)
}

func TestVerifySlipAppliesPayment(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	slips := NewPaymentSlipService(db)
	room := createRoom(t, db, "101", 2, 1200)

	admin := models.Admin{FullName: "Manager", Username: "manager"}
	require.NoError(t, db.Create(&admin).Error)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)

	slip, err := slips.Submit(booking.ID, 2400, "full payment")
	require.NoError(t, err)

	slip, err = slips.Verify(slip.ID, admin.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.SlipVerified, slip.Status)
	require.NotNil(t, slip.VerifiedBy)
	assert.Equal(t, admin.ID, *slip.VerifiedBy)

	updated := reloadBooking(t, db, booking.ID)
	assert.Equal(t, 2400.0, updated.PaidAmount)
	assert.Equal(t, models.PaymentPaid, updated.PaymentStatus)

	// a slip settles exactly once
	_, err = slips.Verify(slip.ID, admin.ID, true)
	assert.ErrorIs(t, err, ErrSlipProcessed)
}

func TestRejectSlipLeavesBalanceUntouched(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	slips := NewPaymentSlipService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)

	slip, err := slips.Submit(booking.ID, 2400, "blurry slip")
	require.NoError(t, err)

	slip, err = slips.Verify(slip.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, models.SlipRejected, slip.Status)

	updated := reloadBooking(t, db, booking.ID)
	assert.Equal(t, 0.0, updated.PaidAmount)
	assert.Equal(t, models.PaymentPending, updated.PaymentStatus)
}

func TestVerifyOverpayingSlipFails(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	slips := NewPaymentSlipService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)

	slip, err := slips.Submit(booking.ID, 9999, "wrong amount")
	require.NoError(t, err)

	_, err = slips.Verify(slip.ID, 1, true)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// the transaction rolled back: slip still pending, balance untouched
	var reloadedSlip models.PaymentSlip
	require.NoError(t, db.First(&reloadedSlip, slip.ID).Error)
	assert.Equal(t, models.SlipPending, reloadedSlip.Status)
	assert.Equal(t, 0.0, reloadBooking(t, db, booking.ID).PaidAmount)
}

func TestSubmitSlipForCancelledBooking(t *testing.T) {
	db := newTestDB(t)
	bookings := NewBookingService(db)
	slips := NewPaymentSlipService(db)
	room := createRoom(t, db, "101", 2, 1200)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		RoomID:   room.ID,
		CheckIn:  date(2030, 3, 1),
		CheckOut: date(2030, 3, 3),
	})
	require.NoError(t, err)
	_, err = bookings.ChangeStatus(booking.ID, models.BookingCancelled)
	require.NoError(t, err)

	_, err = slips.Submit(booking.ID, 1200, "late transfer")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}
