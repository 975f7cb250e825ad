package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type CreateBookingRequest struct {
	RoomID     uint                     `json:"room_id" binding:"required"`
	CheckIn    string                   `json:"check_in" binding:"required"`
	CheckOut   string                   `json:"check_out" binding:"required"`
	GuestName  string                   `json:"guest_name" binding:"required"`
	GuestPhone string                   `json:"guest_phone"`
	GuestEmail string                   `json:"guest_email"`
	Adults     int                      `json:"adults"`
	Children   int                      `json:"children"`
	GuestList  []map[string]interface{} `json:"guest_list,omitempty"`

	// "pending" (default), "confirmed" (staff), or "checked_in" (walk-in)
	Status string `json:"status"`
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	ci, err := parseDate(req.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format, expected YYYY-MM-DD")
		return
	}
	co, err := parseDate(req.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format, expected YYYY-MM-DD")
		return
	}

	status := models.BookingPending
	if req.Status != "" {
		status, err = models.ParseBookingStatus(req.Status)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	booking, err := bc.BookingSvc.CreateBooking(services.CreateBookingInput{
		RoomID:     req.RoomID,
		GuestName:  req.GuestName,
		GuestPhone: req.GuestPhone,
		GuestEmail: req.GuestEmail,
		CheckIn:    ci,
		CheckOut:   co,
		Adults:     req.Adults,
		Children:   req.Children,
		GuestList:  req.GuestList,
		Status:     status,
	})
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

type ChangeBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ChangeStatus handles POST /api/bookings/:id/status.
func (bc *BookingController) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ChangeBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	target, err := models.ParseBookingStatus(req.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.BookingSvc.ChangeStatus(id, target)
	if err != nil {
		respondEngineError(c, err)
		return
	}

	// checkout with a balance is allowed; surface the amount so the frontend
	// can prompt
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"booking":     booking,
		"outstanding": booking.Outstanding(),
	})
}

type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

// RecordPayment handles POST /api/bookings/:id/payments.
func (bc *BookingController) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	booking, err := bc.BookingSvc.RecordPayment(id, req.Amount)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetBookings handles GET /api/bookings?status=.
func (bc *BookingController) GetBookings(c *gin.Context) {
	var status models.BookingStatus
	if raw := c.Query("status"); raw != "" {
		parsed, err := models.ParseBookingStatus(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		status = parsed
	}

	bookings, err := bc.BookingSvc.List(status)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBookingDetails handles GET /api/bookings/:id.
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	booking, err := bc.BookingSvc.GetByID(id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
