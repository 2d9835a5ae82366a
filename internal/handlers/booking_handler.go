package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/optional"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
	usecase "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db *gorm.DB

	createUC  *usecase.CreateBooking
	updateUC  *usecase.UpdateBooking
	cancelUC  *usecase.CancelBooking
	deleteUC  *usecase.DeleteBooking
	availUC   *usecase.GetAvailability
	listDayUC *usecase.ListStylistDay
}

func NewBookingHandler(
	db *gorm.DB,
	createUC *usecase.CreateBooking,
	updateUC *usecase.UpdateBooking,
	cancelUC *usecase.CancelBooking,
	deleteUC *usecase.DeleteBooking,
	availUC *usecase.GetAvailability,
	listDayUC *usecase.ListStylistDay,
) *BookingHandler {
	return &BookingHandler{
		db:        db,
		createUC:  createUC,
		updateUC:  updateUC,
		cancelUC:  cancelUC,
		deleteUC:  deleteUC,
		availUC:   availUC,
		listDayUC: listDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Datetimes entram como string: ISO-8601 com offset, ou naive assumido UTC.
type CreateBookingRequest struct {
	ShopID     uint                       `json:"shop_id" binding:"required"`
	StylistID  *uint                      `json:"stylist_id"`
	StartDt    string                     `json:"start_dt" binding:"required"`
	EndDt      string                     `json:"end_dt" binding:"required"`
	TotalPrice float64                    `json:"total_price"`
	Note       string                     `json:"note"`
	Services   []usecase.ServiceLineInput `json:"services"`
	UserID     *uint                      `json:"user_id"`
}

type UpdateBookingRequest struct {
	Status     optional.Field[string]                     `json:"status"`
	StartDt    optional.Field[string]                     `json:"start_dt"`
	EndDt      optional.Field[string]                     `json:"end_dt"`
	StylistID  optional.Field[uint]                       `json:"stylist_id"`
	Note       optional.Field[string]                     `json:"note"`
	TotalPrice optional.Field[float64]                    `json:"total_price"`
	Services   optional.Field[[]usecase.ServiceLineInput] `json:"services"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	actor := actorFromContext(c)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := timeutil.ParseDateTime(req.StartDt)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_dt", "start_dt must be ISO-8601.")
		return
	}
	end, err := timeutil.ParseDateTime(req.EndDt)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_dt", "end_dt must be ISO-8601.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), actor, usecase.CreateBookingInput{
		ShopID:        req.ShopID,
		StylistID:     req.StylistID,
		StartDt:       start,
		EndDt:         end,
		TotalPrice:    req.TotalPrice,
		Note:          req.Note,
		Services:      req.Services,
		SubjectUserID: req.UserID,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, h.toDTO(created))
}

// ======================================================
// UPDATE (admin, parcial)
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	in := usecase.UpdateBookingInput{
		Status:     req.Status,
		StylistID:  req.StylistID,
		Note:       req.Note,
		TotalPrice: req.TotalPrice,
		Services:   req.Services,
	}

	// datetimes chegam como string; convertidos aqui para manter a regra
	// "naive = UTC" na borda
	if v, ok := req.StartDt.Value(); ok {
		t, err := timeutil.ParseDateTime(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_dt", "start_dt must be ISO-8601.")
			return
		}
		in.StartDt = optional.Of(t)
	} else if req.StartDt.IsNull() {
		httperr.BadRequest(c, "invalid_start_dt", "start_dt cannot be null.")
		return
	}

	if v, ok := req.EndDt.Value(); ok {
		t, err := timeutil.ParseDateTime(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_dt", "end_dt must be ISO-8601.")
			return
		}
		in.EndDt = optional.Of(t)
	} else if req.EndDt.IsNull() {
		httperr.BadRequest(c, "invalid_end_dt", "end_dt cannot be null.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), bookingID, in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(updated))
}

// ======================================================
// CANCEL (self-service)
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	actor := actorFromContext(c)

	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req) // body opcional

	cancelled, err := h.cancelUC.Execute(c.Request.Context(), bookingID, actor, req.Reason)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, h.toDTO(cancelled))
}

// ======================================================
// DELETE
// ======================================================

func (h *BookingHandler) Delete(c *gin.Context) {
	actor := actorFromContext(c)

	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), bookingID, actor); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "deleted"})
}

// ======================================================
// LISTS
// ======================================================

func (h *BookingHandler) ListAll(c *gin.Context) {
	var bookings []models.Booking
	if err := h.db.
		Preload("Services").
		Order("id DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, h.toDTOs(bookings))
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var bookings []models.Booking
	if err := h.db.
		Preload("Services").
		Where("user_id = ?", userID).
		Order("start_dt DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, h.toDTOs(bookings))
}

func (h *BookingHandler) ListByUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_user_id", "Invalid user id.")
		return
	}

	var bookings []models.Booking
	if err := h.db.
		Preload("Services").
		Where("user_id = ?", userID).
		Order("start_dt DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	httpresp.List(c, h.toDTOs(bookings))
}

// ======================================================
// STYLIST DAY VIEW
// ======================================================

func (h *BookingHandler) StylistDay(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	day, ok := h.parseDayQuery(c)
	if !ok {
		return
	}

	bookings, err := h.listDayUC.Execute(c.Request.Context(), stylistID, day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, h.toDTOs(bookings))
}

func (h *BookingHandler) StylistAvailableSlots(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	day, ok := h.parseDayQuery(c)
	if !ok {
		return
	}

	slots, err := h.availUC.Execute(c.Request.Context(), stylistID, day)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// HELPERS
// ======================================================

func (h *BookingHandler) parseDayQuery(c *gin.Context) (time.Time, bool) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Query param date is required.")
		return time.Time{}, false
	}

	day, err := timeutil.ParseDay(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return time.Time{}, false
	}
	return day, true
}

// toDTO anexa os nomes de shop e stylist pedidos pelo read model.
func (h *BookingHandler) toDTO(b *models.Booking) dto.BookingDTO {
	var shopName, stylistName string

	var shop models.Shop
	if err := h.db.First(&shop, b.ShopID).Error; err == nil {
		shopName = shop.Name
	}

	if b.StylistID != nil {
		var stylist models.Stylist
		if err := h.db.First(&stylist, *b.StylistID).Error; err == nil {
			stylistName = stylist.Name
		}
	}

	return dto.FromBooking(b, shopName, stylistName)
}

func (h *BookingHandler) toDTOs(bookings []models.Booking) []dto.BookingDTO {
	out := make([]dto.BookingDTO, 0, len(bookings))
	for i := range bookings {
		out = append(out, h.toDTO(&bookings[i]))
	}
	return out
}
