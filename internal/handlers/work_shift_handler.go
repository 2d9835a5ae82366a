package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

type WorkShiftHandler struct {
	db *gorm.DB
}

func NewWorkShiftHandler(db *gorm.DB) *WorkShiftHandler {
	return &WorkShiftHandler{db: db}
}

// --------- Requests ---------

type WorkShiftRequest struct {
	StylistID uint   `json:"stylist_id" binding:"required"`
	Weekday   *int   `json:"weekday" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

func (r *WorkShiftRequest) validate(c *gin.Context) bool {
	if *r.Weekday < 0 || *r.Weekday > 6 {
		httperr.BadRequest(c, "invalid_weekday", "weekday must be 0 (Sunday) to 6 (Saturday).")
		return false
	}

	start, err := time.Parse(timeutil.HourMinute, r.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_time", "start_time must be HH:MM.")
		return false
	}
	end, err := time.Parse(timeutil.HourMinute, r.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_time", "end_time must be HH:MM.")
		return false
	}
	if !start.Before(end) {
		httperr.BadRequest(c, "start_must_be_before_end", "start_time must be before end_time.")
		return false
	}
	return true
}

// --------- Handlers ---------

func (h *WorkShiftHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var shifts []models.WorkShift
	if err := h.db.
		Where("stylist_id = ?", stylistID).
		Order("weekday").
		Find(&shifts).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shifts", "Failed to list work shifts.")
		return
	}
	httpresp.List(c, shifts)
}

func (h *WorkShiftHandler) Create(c *gin.Context) {
	var req WorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if !req.validate(c) {
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, req.StylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	shift := models.WorkShift{
		StylistID: req.StylistID,
		Weekday:   *req.Weekday,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := h.db.Create(&shift).Error; err != nil {
		// índice único (stylist_id, weekday): um turno por dia da semana
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			httperr.Conflict(c, "shift_already_exists", "Stylist already has a shift on this weekday.")
			return
		}
		httperr.Internal(c, "failed_to_create_shift", "Failed to create work shift.")
		return
	}
	httpresp.Created(c, shift)
}

func (h *WorkShiftHandler) Update(c *gin.Context) {
	shiftID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shift_id", "Invalid shift id.")
		return
	}

	var shift models.WorkShift
	if err := h.db.First(&shift, shiftID).Error; err != nil {
		httperr.NotFound(c, "shift_not_found", "Work shift not found.")
		return
	}

	var req WorkShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if !req.validate(c) {
		return
	}

	shift.StylistID = req.StylistID
	shift.Weekday = *req.Weekday
	shift.StartTime = req.StartTime
	shift.EndTime = req.EndTime

	if err := h.db.Save(&shift).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			httperr.Conflict(c, "shift_already_exists", "Stylist already has a shift on this weekday.")
			return
		}
		httperr.Internal(c, "failed_to_update_shift", "Failed to update work shift.")
		return
	}
	httpresp.OK(c, shift)
}

func (h *WorkShiftHandler) Delete(c *gin.Context) {
	shiftID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shift_id", "Invalid shift id.")
		return
	}

	if err := h.db.Delete(&models.WorkShift{}, shiftID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_shift", "Failed to delete work shift.")
		return
	}
	httpresp.OK(c, gin.H{"message": "deleted"})
}

// isUniqueViolation cobre os drivers que não traduzem para ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
