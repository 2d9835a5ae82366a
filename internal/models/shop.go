package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string  `gorm:"size:100;not null" json:"name"`
	Address string  `gorm:"size:255" json:"address"`
	Lat     float64 `gorm:"type:decimal(10,6)" json:"lat"`
	Lng     float64 `gorm:"type:decimal(10,6)" json:"lng"`
	Phone   string  `gorm:"size:20" json:"phone"`

	OpenTime  string `gorm:"size:5" json:"open_time"`
	CloseTime string `gorm:"size:5" json:"close_time"`

	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	IsActive  bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
