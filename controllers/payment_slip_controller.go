package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type PaymentSlipController struct {
	SlipSvc *services.PaymentSlipService
}

func NewPaymentSlipController(svc *services.PaymentSlipService) *PaymentSlipController {
	return &PaymentSlipController{SlipSvc: svc}
}

type SubmitSlipRequest struct {
	BookingID uint    `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Note      string  `json:"note"`
}

// Submit handles POST /api/payment-slips.
func (pc *PaymentSlipController) Submit(c *gin.Context) {
	var req SubmitSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	slip, err := pc.SlipSvc.Submit(req.BookingID, req.Amount, req.Note)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, slip)
}

type VerifySlipRequest struct {
	AdminID uint  `json:"admin_id" binding:"required"`
	Approve *bool `json:"approve" binding:"required"`
}

// Verify handles POST /api/payment-slips/:id/verify.
func (pc *PaymentSlipController) Verify(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req VerifySlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	slip, err := pc.SlipSvc.Verify(id, req.AdminID, *req.Approve)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slip)
}

// List handles GET /api/payment-slips?status=.
func (pc *PaymentSlipController) List(c *gin.Context) {
	var status models.SlipStatus
	if raw := c.Query("status"); raw != "" {
		switch models.SlipStatus(raw) {
		case models.SlipPending, models.SlipVerified, models.SlipRejected:
			status = models.SlipStatus(raw)
		default:
			utils.JSONError(c, http.StatusBadRequest, "unknown slip status: "+raw)
			return
		}
	}

	slips, err := pc.SlipSvc.List(status)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, slips)
}
