package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type DeleteBooking struct {
	repo  domain.Repository
	avail *cache.Availability
}

func NewDeleteBooking(
	repo domain.Repository,
	avail *cache.Availability,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		avail: avail,
	}
}

// Execute remove o booking e suas linhas. Admin deleta incondicionalmente;
// o dono só enquanto pending/approved.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	bookingID uint,
	actor Actor,
) error {

	var deleted *models.Booking

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("booking_not_found")
			}
			return err
		}

		if !actor.IsAdmin() {
			if b.UserID != actor.ID {
				return httperr.ErrForbidden("not_booking_owner")
			}
			if !domain.Status(b.Status).Occupies() {
				return httperr.ErrInvalidState("booking_not_deletable")
			}
		}

		if err := tx.DeleteBooking(ctx, b.ID); err != nil {
			return err
		}

		deleted = b
		return nil
	})
	if err != nil {
		return err
	}

	if deleted.StylistID != nil {
		uc.avail.Invalidate(ctx, *deleted.StylistID, deleted.StartDt, deleted.EndDt)
	}

	return nil
}
