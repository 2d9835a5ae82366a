package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ShopID uint `gorm:"index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	// StylistID nulo = sem preferência; nunca participa de conflito.
	StylistID *uint    `gorm:"index" json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	StartDt time.Time `gorm:"index" json:"start_dt"`
	EndDt   time.Time `json:"end_dt"`

	TotalPrice float64 `gorm:"type:decimal(10,2);default:0" json:"total_price"`
	Note       string  `gorm:"type:text" json:"note"`

	Services []BookingServiceLine `gorm:"foreignKey:BookingID" json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingServiceLine é um serviço selecionado dentro do booking; o conjunto
// de linhas é sempre substituído por inteiro em updates.
type BookingServiceLine struct {
	BookingID uint `gorm:"primaryKey" json:"booking_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Price       float64 `gorm:"type:decimal(10,2);default:0" json:"price"`
	DurationMin int     `gorm:"default:30" json:"duration_min"`
}
