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
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

type UpdateBooking struct {
	repo  domain.Repository
	avail *cache.Availability
}

func NewUpdateBooking(
	repo domain.Repository,
	avail *cache.Availability,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		avail: avail,
	}
}

// Execute aplica um update parcial: campos ausentes ficam intactos, campos
// enviados (inclusive null) são aplicados. Se o conjunto de serviços vier,
// ele substitui o antigo por inteiro e total_price/end_dt são recalculados.
// O conflito é re-checado sempre que o intervalo efetivo ou o stylist
// mudarem, por qualquer motivo.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	var oldStylist *uint
	var oldStart, oldEnd time.Time

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBookingByID(ctx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return httperr.ErrNotFound("booking_not_found")
			}
			return err
		}

		oldStylist = b.StylistID
		oldStart, oldEnd = b.StartDt, b.EndDt

		// ----------------------------------------------
		// Intervalo e stylist efetivos após o update
		// ----------------------------------------------
		newStart := b.StartDt
		if v, ok := in.StartDt.Value(); ok {
			newStart = timeutil.ToUTC(v)
		}
		newEnd := b.EndDt
		if v, ok := in.EndDt.Value(); ok {
			newEnd = timeutil.ToUTC(v)
		}

		newStylist := b.StylistID
		if in.StylistID.IsNull() {
			newStylist = nil
		} else if v, ok := in.StylistID.Value(); ok {
			newStylist = &v
		}

		var newLines []models.BookingServiceLine
		if lines, ok := in.Services.Value(); ok {
			if err := ValidateLines(lines); err != nil {
				return err
			}
			newLines = toLineModels(lines)

			minutes := 0
			for _, l := range newLines {
				minutes += l.DurationMin
			}
			newEnd = newStart.Add(time.Duration(minutes) * time.Minute)
		}

		candidate := domain.Interval{Start: newStart, End: newEnd}
		if !candidate.Valid() {
			return httperr.ErrValidation("start_must_be_before_end")
		}

		// ----------------------------------------------
		// Transição de status
		// ----------------------------------------------
		if v, ok := in.Status.Value(); ok {
			st := domain.Status(v)
			if !st.Valid() {
				return httperr.ErrValidation("invalid_status")
			}
			if err := domain.CanTransition(domain.Status(b.Status), st); err != nil {
				return err
			}
			b.Status = string(st)
		}

		// ----------------------------------------------
		// Re-checa conflito se o range efetivo ou o stylist mudou
		// ----------------------------------------------
		stylistChanged := !sameStylist(b.StylistID, newStylist)
		intervalChanged := !newStart.Equal(b.StartDt) || !newEnd.Equal(b.EndDt)

		if newStylist != nil && (stylistChanged || intervalChanged) {
			if _, err := tx.GetStylistByID(ctx, *newStylist); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrNotFound("stylist_not_found")
				}
				return err
			}

			conflict, err := tx.HasConflict(ctx, *newStylist, candidate, b.ID)
			if err != nil {
				return err
			}
			if conflict {
				return httperr.ErrConflict("stylist_already_booked")
			}
		}

		// ----------------------------------------------
		// Aplica os campos enviados
		// ----------------------------------------------
		b.StartDt = newStart
		b.EndDt = newEnd
		b.StylistID = newStylist

		if v, ok := in.Note.Value(); ok {
			b.Note = v
		}

		if newLines != nil {
			total := 0.0
			for _, l := range newLines {
				total += l.Price
			}
			b.TotalPrice = total

			if err := tx.ReplaceServiceLines(ctx, b.ID, newLines); err != nil {
				return err
			}
		} else if v, ok := in.TotalPrice.Value(); ok {
			b.TotalPrice = v
		}

		return tx.SaveBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// dias/stylists afetados, antes e depois do update
	if oldStylist != nil {
		uc.avail.Invalidate(ctx, *oldStylist, oldStart, oldEnd)
	}
	if updated.StylistID != nil {
		uc.avail.Invalidate(ctx, *updated.StylistID, updated.StartDt, updated.EndDt)
	}

	return updated, nil
}

func sameStylist(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
