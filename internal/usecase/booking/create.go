package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timeutil"
)

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	avail    *cache.Availability
}

func NewCreateBooking(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	avail *cache.Availability,
) *CreateBooking {
	return &CreateBooking{
		repo:     repo,
		notifier: notifier,
		avail:    avail,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	actor Actor,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Validação (antes de qualquer escrita)
	// --------------------------------------------------
	if err := ValidateLines(in.Services); err != nil {
		return nil, err
	}

	start := timeutil.ToUTC(in.StartDt)
	end := timeutil.ToUTC(in.EndDt)
	candidate := domain.Interval{Start: start, End: end}
	if !candidate.Valid() {
		return nil, httperr.ErrValidation("start_must_be_before_end")
	}

	// --------------------------------------------------
	// Sujeito do booking
	// --------------------------------------------------
	userID := actor.ID
	if in.SubjectUserID != nil && *in.SubjectUserID != actor.ID {
		if !actor.IsAdmin() {
			return nil, httperr.ErrForbidden("cannot_book_for_other_user")
		}
		if _, err := uc.repo.GetUserByID(ctx, *in.SubjectUserID); err != nil {
			return nil, httperr.ErrNotFound("user_not_found")
		}
		userID = *in.SubjectUserID
	}

	if _, err := uc.repo.GetShopByID(ctx, in.ShopID); err != nil {
		return nil, httperr.ErrNotFound("shop_not_found")
	}

	// --------------------------------------------------
	// Conflito + criação num único escopo transacional
	// --------------------------------------------------
	b := &models.Booking{
		UserID:     userID,
		ShopID:     in.ShopID,
		StylistID:  in.StylistID,
		Status:     string(domain.InitialStatus()),
		StartDt:    start,
		EndDt:      end,
		TotalPrice: in.TotalPrice,
		Note:       in.Note,
		Services:   toLineModels(in.Services),
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if in.StylistID != nil {
			if _, err := tx.GetStylistByID(ctx, *in.StylistID); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return httperr.ErrNotFound("stylist_not_found")
				}
				return err
			}

			conflict, err := tx.HasConflict(ctx, *in.StylistID, candidate, 0)
			if err != nil {
				return err
			}
			if conflict {
				return httperr.ErrConflict("stylist_already_booked")
			}
		}

		return tx.CreateBooking(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Efeitos colaterais pós-commit (fire-and-forget)
	// --------------------------------------------------
	uc.notifyCreated(ctx, b)

	if in.StylistID != nil {
		uc.avail.Invalidate(ctx, *in.StylistID, start, end)
	}

	return b, nil
}

func (uc *CreateBooking) notifyCreated(ctx context.Context, b *models.Booking) {
	if uc.notifier == nil {
		return
	}

	data := map[string]any{
		"booking_id": b.ID,
		"start_dt":   b.StartDt,
		"end_dt":     b.EndDt,
	}

	uc.notifier.Dispatch(notify.Event{
		UserID: b.UserID,
		Title:  "Booking confirmed",
		Body:   "Your booking was created and is pending approval.",
		Data:   data,
	})

	admins, err := uc.repo.ListAdmins(ctx)
	if err != nil {
		// entrega é best-effort; a criação do booking já foi commitada
		return
	}
	for _, a := range admins {
		uc.notifier.Dispatch(notify.Event{
			UserID: a.ID,
			Title:  "New booking",
			Body:   "A new booking is waiting for approval.",
			Data:   data,
		})
	}
}
