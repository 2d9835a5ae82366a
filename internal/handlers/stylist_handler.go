package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type StylistHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

func NewStylistHandler(db *gorm.DB, storage *media.Storage) *StylistHandler {
	return &StylistHandler{db: db, storage: storage}
}

// --------- Requests ---------

type StylistRequest struct {
	ShopID     uint   `json:"shop_id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Bio        string `json:"bio"`
	IsActive   *bool  `json:"is_active"`
	ServiceIDs []uint `json:"service_ids"`
}

// --------- Handlers ---------

func (h *StylistHandler) List(c *gin.Context) {
	q := h.db.Where("is_active = ?", true).Preload("Services.Service")

	if shopID := c.Query("shop_id"); shopID != "" {
		q = q.Where("shop_id = ?", shopID)
	}

	var stylists []models.Stylist
	if err := q.Order("name").Find(&stylists).Error; err != nil {
		httperr.Internal(c, "failed_to_list_stylists", "Failed to list stylists.")
		return
	}
	httpresp.List(c, stylists)
}

func (h *StylistHandler) Get(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.Preload("Services.Service").First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}
	httpresp.OK(c, stylist)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, req.ShopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	stylist := models.Stylist{
		ShopID:   req.ShopID,
		Name:     req.Name,
		Bio:      req.Bio,
		IsActive: true,
	}
	if req.IsActive != nil {
		stylist.IsActive = *req.IsActive
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&stylist).Error; err != nil {
			return err
		}
		return replaceStylistServices(tx, stylist.ID, req.ServiceIDs)
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, stylist)
}

func (h *StylistHandler) Update(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	var req StylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	stylist.ShopID = req.ShopID
	stylist.Name = req.Name
	stylist.Bio = req.Bio
	if req.IsActive != nil {
		stylist.IsActive = *req.IsActive
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&stylist).Error; err != nil {
			return err
		}
		if req.ServiceIDs != nil {
			return replaceStylistServices(tx, stylist.ID, req.ServiceIDs)
		}
		return nil
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, stylist)
}

func (h *StylistHandler) Delete(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stylist_id = ?", stylistID).
			Delete(&models.StylistService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Stylist{}, stylistID).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_delete_stylist", "Failed to delete stylist.")
		return
	}
	httpresp.OK(c, gin.H{"message": "deleted"})
}

func (h *StylistHandler) UploadAvatar(c *gin.Context) {
	stylistID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_stylist_id", "Invalid stylist id.")
		return
	}

	var stylist models.Stylist
	if err := h.db.First(&stylist, stylistID).Error; err != nil {
		httperr.NotFound(c, "stylist_not_found", "Stylist not found.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Multipart field file is required.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Failed to read uploaded file.")
		return
	}
	defer f.Close()

	encoded, err := media.EncodeAvatar(f)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "File must be a jpeg, png or webp image.")
		return
	}

	url, err := h.storage.UploadAvatar(c.Request.Context(), "stylists", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Failed to upload avatar.")
		return
	}

	stylist.AvatarURL = url
	if err := h.db.Save(&stylist).Error; err != nil {
		httperr.Internal(c, "failed_to_update_stylist", "Failed to update stylist.")
		return
	}
	httpresp.OK(c, gin.H{"avatar_url": url})
}

// replaceStylistServices troca o conjunto inteiro de vínculos stylist/serviço.
func replaceStylistServices(tx *gorm.DB, stylistID uint, serviceIDs []uint) error {
	if err := tx.Where("stylist_id = ?", stylistID).
		Delete(&models.StylistService{}).Error; err != nil {
		return err
	}

	if len(serviceIDs) == 0 {
		return nil
	}

	links := make([]models.StylistService, 0, len(serviceIDs))
	for _, sid := range serviceIDs {
		links = append(links, models.StylistService{
			StylistID: stylistID,
			ServiceID: sid,
		})
	}
	return tx.Create(&links).Error
}
