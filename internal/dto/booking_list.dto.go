package dto

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingDTO struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	ShopID     uint      `json:"shop_id"`
	StylistID  *uint     `json:"stylist_id"`
	Status     string    `json:"status"`
	StartDt    time.Time `json:"start_dt"`
	EndDt      time.Time `json:"end_dt"`
	TotalPrice float64   `json:"total_price"`
	Note       string    `json:"note"`
	CreatedAt  time.Time `json:"created_at"`

	ShopName    string `json:"shop_name,omitempty"`
	StylistName string `json:"stylist_name,omitempty"`

	Services []models.BookingServiceLine `json:"services,omitempty"`
}

func FromBooking(b *models.Booking, shopName, stylistName string) BookingDTO {
	return BookingDTO{
		ID:          b.ID,
		UserID:      b.UserID,
		ShopID:      b.ShopID,
		StylistID:   b.StylistID,
		Status:      b.Status,
		StartDt:     b.StartDt.UTC(),
		EndDt:       b.EndDt.UTC(),
		TotalPrice:  b.TotalPrice,
		Note:        b.Note,
		CreatedAt:   b.CreatedAt.UTC(),
		ShopName:    shopName,
		StylistName: stylistName,
		Services:    b.Services,
	}
}
