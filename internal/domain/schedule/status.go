package schedule

import "github.com/BruksfildServices01/barber-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Occupies diz se um booking neste status bloqueia a agenda do stylist.
// Cancelados e concluídos nunca contam como ocupados.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusApproved
}

// OccupyingStatuses é a lista usada nas queries de conflito/agenda.
func OccupyingStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved)}
}

// ===============================
// Transições
// ===============================

// CanTransition valida a máquina de estados:
// pending → approved → completed; pending|approved → cancelled.
// cancelled e completed são terminais.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	switch from {
	case StatusPending:
		if to == StatusApproved || to == StatusCancelled {
			return nil
		}
	case StatusApproved:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}

	return httperr.ErrInvalidState("invalid_status_transition")
}
