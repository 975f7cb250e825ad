package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hms-backend/models"
	"hms-backend/services"
	"hms-backend/utils"
)

type RoomController struct {
	RoomSvc   *services.RoomService
	StatusSvc *services.RoomStatusService
	AvailSvc  *services.AvailabilityService
}

func NewRoomController(rooms *services.RoomService, status *services.RoomStatusService, avail *services.AvailabilityService) *RoomController {
	return &RoomController{RoomSvc: rooms, StatusSvc: status, AvailSvc: avail}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// CreateRoom handles POST /api/rooms (administrative action).
func (rc *RoomController) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if err := rc.RoomSvc.Create(&room); err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// DeleteRoom handles DELETE /api/rooms/:id. Rooms with active bookings are
// blocked; the delete is soft either way.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := rc.RoomSvc.Delete(id); err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

// GetAvailableRooms handles GET /api/rooms/available?check_in=&check_out=&guests=.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	ci, err := parseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_in format, expected YYYY-MM-DD")
		return
	}
	co, err := parseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check_out format, expected YYYY-MM-DD")
		return
	}

	guests := 1
	if raw := c.Query("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil || guests < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid guests value")
			return
		}
	}

	rooms, err := rc.AvailSvc.GetAvailableRooms(ci, co, guests)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

type ChangeRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reason string `json:"reason"`
}

// ChangeStatus handles POST /api/rooms/:id/status — the staff housekeeping
// and maintenance actions.
func (rc *RoomController) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	target, err := models.ParseRoomStatus(req.Status)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := rc.StatusSvc.ChangeStatus(id, target, req.Reason)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// StatusHistory handles GET /api/rooms/:id/status-log.
func (rc *RoomController) StatusHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	history, err := rc.StatusSvc.History(id)
	if err != nil {
		respondEngineError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, history)
}
