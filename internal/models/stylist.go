package models

import "time"

type Stylist struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopID uint `gorm:"index" json:"shop_id"`
	Shop   Shop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name      string `gorm:"size:100;not null" json:"name"`
	Bio       string `gorm:"type:text" json:"bio"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	Services []StylistService `json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistService liga um stylist aos serviços que ele executa.
type StylistService struct {
	StylistID uint `gorm:"primaryKey" json:"stylist_id"`
	ServiceID uint `gorm:"primaryKey" json:"service_id"`

	Service Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`
}
