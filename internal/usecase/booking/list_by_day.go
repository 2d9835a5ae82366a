package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

type ListStylistDay struct {
	repo domain.Repository
}

func NewListStylistDay(repo domain.Repository) *ListStylistDay {
	return &ListStylistDay{repo: repo}
}

// Execute lista os bookings ocupantes do stylist num dia UTC, ordenados
// por início. Leitura pura do ledger; exige só autenticação.
func (uc *ListStylistDay) Execute(
	ctx context.Context,
	stylistID uint,
	day time.Time,
) ([]models.Booking, error) {

	if _, err := uc.repo.GetStylistByID(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("stylist_not_found")
		}
		return nil, err
	}

	dayStart, dayEnd := timeutil.DayWindow(day)
	return uc.repo.ListOccupyingForDay(ctx, stylistID, dayStart, dayEnd)
}
