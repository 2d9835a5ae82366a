package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

type GetAvailability struct {
	repo  domain.Repository
	avail *cache.Availability
}

func NewGetAvailability(
	repo domain.Repository,
	avail *cache.Availability,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		avail: avail,
	}
}

// Execute devolve os buracos livres do stylist num dia UTC: a janela do
// turno daquele dia da semana menos os bookings ocupantes. Sem turno no
// dia, a lista é vazia — resultado válido, não erro. O resultado é
// recomputado a cada chamada; o cache redis só encurta o caminho.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	stylistID uint,
	day time.Time,
) ([]domain.Interval, error) {

	if _, err := uc.repo.GetStylistByID(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("stylist_not_found")
		}
		return nil, err
	}

	day = day.UTC()
	if slots, ok := uc.avail.Get(ctx, stylistID, day); ok {
		return slots, nil
	}

	ws, err := uc.repo.GetWorkShift(ctx, stylistID, day.Weekday())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// stylist folga nesse dia
			return []domain.Interval{}, nil
		}
		return nil, err
	}

	window, err := domain.ShiftWindow(ws, day)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := timeutil.DayWindow(day)
	bookings, err := uc.repo.ListOccupyingForDay(ctx, stylistID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, domain.Interval{Start: b.StartDt, End: b.EndDt})
	}

	slots := domain.FreeSlots(window, busy)
	uc.avail.Set(ctx, stylistID, day, slots)

	return slots, nil
}
