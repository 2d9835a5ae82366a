package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/media"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ShopHandler struct {
	db      *gorm.DB
	storage *media.Storage
}

func NewShopHandler(db *gorm.DB, storage *media.Storage) *ShopHandler {
	return &ShopHandler{db: db, storage: storage}
}

// --------- Requests ---------

type ShopRequest struct {
	Name      string  `json:"name" binding:"required"`
	Address   string  `json:"address"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Phone     string  `json:"phone"`
	OpenTime  string  `json:"open_time"`
	CloseTime string  `json:"close_time"`
	IsActive  *bool   `json:"is_active"`
}

// --------- Handlers ---------

func (h *ShopHandler) List(c *gin.Context) {
	var shops []models.Shop
	if err := h.db.Where("is_active = ?", true).Order("name").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_shops", "Failed to list shops.")
		return
	}
	httpresp.List(c, shops)
}

func (h *ShopHandler) Get(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}
	httpresp.OK(c, shop)
}

func (h *ShopHandler) Create(c *gin.Context) {
	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	shop := models.Shop{
		Name:      req.Name,
		Address:   req.Address,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Phone:     req.Phone,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
		IsActive:  true,
	}
	if req.IsActive != nil {
		shop.IsActive = *req.IsActive
	}

	if err := h.db.Create(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_create_shop", "Failed to create shop.")
		return
	}
	httpresp.Created(c, shop)
}

func (h *ShopHandler) Update(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	shop.Name = req.Name
	shop.Address = req.Address
	shop.Lat = req.Lat
	shop.Lng = req.Lng
	shop.Phone = req.Phone
	shop.OpenTime = req.OpenTime
	shop.CloseTime = req.CloseTime
	if req.IsActive != nil {
		shop.IsActive = *req.IsActive
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Failed to update shop.")
		return
	}
	httpresp.OK(c, shop)
}

func (h *ShopHandler) Delete(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	if err := h.db.Delete(&models.Shop{}, shopID).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_shop", "Failed to delete shop.")
		return
	}
	httpresp.OK(c, gin.H{"message": "deleted"})
}

// UploadAvatar recebe multipart "file", reencoda como webp e publica no S3.
func (h *ShopHandler) UploadAvatar(c *gin.Context) {
	shopID, ok := parseIDParam(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_shop_id", "Invalid shop id.")
		return
	}

	var shop models.Shop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "shop_not_found", "Shop not found.")
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

	url, err := h.storage.UploadAvatar(c.Request.Context(), "shops", encoded)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_avatar", "Failed to upload avatar.")
		return
	}

	shop.AvatarURL = url
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_shop", "Failed to update shop.")
		return
	}
	httpresp.OK(c, gin.H{"avatar_url": url})
}
