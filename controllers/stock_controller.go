package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type StockController struct {
	StockSvc *services.StockService
}

func NewStockController(svc *services.StockService) *StockController {
	return &StockController{StockSvc: svc}
}

type RecordMovementRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Direction string `json:"direction" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Reason    string `json:"reason"`
	AdminID   *uint  `json:"admin_id"`
}

// RecordMovement handles POST /api/stock/movements.
func (sc *StockController) RecordMovement(c *gin.Context) {
	var req RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	direction, err := models.ParseMovementDirection(req.Direction)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	movement, err := sc.StockSvc.RecordMovement(req.ProductID, direction, req.Quantity, req.Reason, req.AdminID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, movement)
}

// GetLowStock handles GET /api/stock/low.
func (sc *StockController) GetLowStock(c *gin.Context) {
	products, err := sc.StockSvc.GetLowStock()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, products)
}

// ListMovements handles GET /api/stock/movements?product_id=.
func (sc *StockController) ListMovements(c *gin.Context) {
	var productID uint
	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid product_id")
			return
		}
		productID = uint(id)
	}

	movements, err := sc.StockSvc.ListMovements(productID)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, movements)
}
