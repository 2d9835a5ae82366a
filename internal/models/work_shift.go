package models

import "time"

// WorkShift é a janela fixa de expediente de um stylist para um dia da semana.
// Weekday segue time.Weekday (0 = domingo). Horários são "15:04", sem data.
type WorkShift struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StylistID uint    `gorm:"uniqueIndex:idx_stylist_weekday" json:"stylist_id"`
	Stylist   Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Weekday int `gorm:"uniqueIndex:idx_stylist_weekday" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
