package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ReviewHandler struct {
	db *gorm.DB
}

func NewReviewHandler(db *gorm.DB) *ReviewHandler {
	return &ReviewHandler{db: db}
}

// --------- Requests ---------

type CreateReviewRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" binding:"required"`
}

// --------- Handlers ---------

// Create exige booking concluído e do próprio usuário; uma review por booking.
func (h *ReviewHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "rating must be between 1 and 5.")
		return
	}

	var booking models.Booking
	if err := h.db.First(&booking, req.BookingID).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
		return
	}

	if booking.UserID != userID {
		httperr.Forbidden(c, "not_booking_owner", "You can only review your own bookings.")
		return
	}
	if booking.Status != string(domain.StatusCompleted) {
		httperr.Conflict(c, "booking_not_completed", "Only completed bookings can be reviewed.")
		return
	}

	var existing int64
	h.db.Model(&models.Review{}).Where("booking_id = ?", req.BookingID).Count(&existing)
	if existing > 0 {
		httperr.Conflict(c, "review_already_exists", "Booking already has a review.")
		return
	}

	review := models.Review{
		BookingID: req.BookingID,
		UserID:    userID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.db.Create(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_create_review", "Failed to create review.")
		return
	}
	httpresp.Created(c, review)
}

func (h *ReviewHandler) List(c *gin.Context) {
	var reviews []models.Review
	if err := h.db.
		Preload("Replies").
		Order("id DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to list reviews.")
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) ListByStylist(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var reviews []models.Review
	if err := h.db.
		Joins("JOIN bookings ON bookings.id = reviews.booking_id").
		Where("bookings.stylist_id = ?", stylistID).
		Preload("Replies").
		Order("reviews.id DESC").
		Find(&reviews).Error; err != nil {
		httperr.Internal(c, "failed_to_list_reviews", "Failed to list reviews.")
		return
	}
	httpresp.List(c, reviews)
}

func (h *ReviewHandler) GetByBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var review models.Review
	if err := h.db.
		Preload("Replies").
		Where("booking_id = ?", bookingID).
		First(&review).Error; err != nil {
		httperr.NotFound(c, "review_not_found", "Review not found.")
		return
	}
	httpresp.OK(c, review)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_review_id", "Invalid review id.")
		return
	}

	var review models.Review
	if err := h.db.First(&review, reviewID).Error; err != nil {
		httperr.NotFound(c, "review_not_found", "Review not found.")
		return
	}
	if review.UserID != userID {
		httperr.Forbidden(c, "not_review_owner", "You can only edit your own reviews.")
		return
	}

	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "invalid_rating", "rating must be between 1 and 5.")
		return
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := h.db.Save(&review).Error; err != nil {
		httperr.Internal(c, "failed_to_update_review", "Failed to update review.")
		return
	}
	httpresp.OK(c, review)
}

func (h *ReviewHandler) Reply(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_review_id", "Invalid review id.")
		return
	}

	var review models.Review
	if err := h.db.First(&review, reviewID).Error; err != nil {
		httperr.NotFound(c, "review_not_found", "Review not found.")
		return
	}

	var req ReplyReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	reply := models.ReviewReply{
		ReviewID: review.ID,
		AdminID:  adminID,
		Reply:    req.Reply,
	}
	if err := h.db.Create(&reply).Error; err != nil {
		httperr.Internal(c, "failed_to_create_reply", "Failed to create reply.")
		return
	}
	httpresp.Created(c, reply)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_review_id", "Invalid review id.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", reviewID).
			Delete(&models.ReviewReply{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, reviewID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_review", "Failed to delete review.")
		return
	}
	httpresp.OK(c, gin.H{"message": "deleted"})
}
