package schedule

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel aplica o cancelamento self-service: só antes do início e só a
// partir de um status ocupante.
func Cancel(b *models.Booking, now time.Time, reason string) error {
	if !Status(b.Status).Occupies() {
		// já cancelado ou concluído
		return httperr.ErrInvalidState("booking_not_cancellable")
	}
	if !b.StartDt.After(now) {
		return httperr.ErrInvalidState("booking_already_started")
	}

	b.Status = string(StatusCancelled)
	if reason != "" {
		b.Note = AppendCancelReason(b.Note, reason)
	}
	return nil
}

// AppendCancelReason anexa o motivo ao note sem sobrescrever o conteúdo
// anterior.
func AppendCancelReason(note, reason string) string {
	suffix := "[cancelled] " + reason
	if note == "" {
		return suffix
	}
	return note + "\n" + suffix
}

func Approve(b *models.Booking) error {
	if err := CanTransition(Status(b.Status), StatusApproved); err != nil {
		return err
	}
	b.Status = string(StatusApproved)
	return nil
}

func Complete(b *models.Booking) error {
	if err := CanTransition(Status(b.Status), StatusCompleted); err != nil {
		return err
	}
	b.Status = string(StatusCompleted)
	return nil
}

// RecomputeFromLines substitui as linhas de serviço por inteiro e
// recalcula total_price e end_dt a partir delas.
func RecomputeFromLines(b *models.Booking, lines []models.BookingServiceLine) error {
	if len(lines) == 0 {
		return httperr.ErrValidation("services_required")
	}

	total := 0.0
	minutes := 0
	for _, l := range lines {
		if l.DurationMin <= 0 {
			return httperr.ErrValidation("invalid_service_duration")
		}
		if l.Price <= 0 {
			return httperr.ErrValidation("invalid_service_price")
		}
		total += l.Price
		minutes += l.DurationMin
	}

	b.Services = lines
	b.TotalPrice = total
	b.EndDt = b.StartDt.Add(time.Duration(minutes) * time.Minute)
	return nil
}
