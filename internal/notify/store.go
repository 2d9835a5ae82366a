package notify

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Save(
	userID uint,
	title string,
	body string,
	data any,
) error {

	var dataJSON string
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			dataJSON = string(b)
		}
	}

	n := models.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		DataJSON: dataJSON,
	}

	return s.db.Create(&n).Error
}
