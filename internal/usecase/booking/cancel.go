package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CancelBooking struct {
	repo  domain.Repository
	avail *cache.Availability
	now   func() time.Time
}

func NewCancelBooking(
	repo domain.Repository,
	avail *cache.Availability,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		avail: avail,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Execute é o cancelamento self-service: só o dono cancela, só antes do
// início, e só a partir de pending/approved. O motivo vira um sufixo no
// note, nunca sobrescreve o conteúdo anterior.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor Actor,
	reason string,
) (*models.Booking, error) {

	var cancelled *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("booking_not_found")
			}
			return err
		}

		if b.UserID != actor.ID {
			return httperr.ErrForbidden("not_booking_owner")
		}

		if err := domain.Cancel(b, uc.now(), reason); err != nil {
			return err
		}

		if err := tx.SaveBooking(ctx, b); err != nil {
			return err
		}

		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cancelled.StylistID != nil {
		uc.avail.Invalidate(ctx, *cancelled.StylistID, cancelled.StartDt, cancelled.EndDt)
	}

	return cancelled, nil
}
