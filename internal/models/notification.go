package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Title    string `gorm:"size:200;not null" json:"title"`
	Body     string `gorm:"size:500" json:"body"`
	DataJSON string `gorm:"type:text" json:"data_json"`
	IsRead   bool   `gorm:"default:false" json:"is_read"`

	CreatedAt time.Time `json:"created_at"`
}
