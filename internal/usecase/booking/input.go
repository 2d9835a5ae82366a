package booking

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/optional"
)

// ======================================================
// ACTOR
// ======================================================

// Actor é o sujeito autenticado extraído do token.
type Actor struct {
	ID   uint
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// ======================================================
// INPUTS
// ======================================================

type ServiceLineInput struct {
	ServiceID   uint    `json:"service_id" binding:"required"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

func (l ServiceLineInput) toModel() models.BookingServiceLine {
	return models.BookingServiceLine{
		ServiceID:   l.ServiceID,
		Price:       l.Price,
		DurationMin: l.DurationMin,
	}
}

// ValidateLines rejeita o conjunto vazio e linhas com duração ou preço
// não positivos, antes de qualquer escrita.
func ValidateLines(lines []ServiceLineInput) error {
	if len(lines) == 0 {
		return httperr.ErrValidation("services_required")
	}
	for _, l := range lines {
		if l.DurationMin <= 0 {
			return httperr.ErrValidation("invalid_service_duration")
		}
		if l.Price <= 0 {
			return httperr.ErrValidation("invalid_service_price")
		}
	}
	return nil
}

func toLineModels(lines []ServiceLineInput) []models.BookingServiceLine {
	out := make([]models.BookingServiceLine, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.toModel())
	}
	return out
}

type CreateBookingInput struct {
	ShopID        uint
	StylistID     *uint
	StartDt       time.Time
	EndDt         time.Time
	TotalPrice    float64
	Note          string
	Services      []ServiceLineInput
	SubjectUserID *uint
}

// UpdateBookingInput distingue campo ausente de campo enviado; só campos
// Set são aplicados, e null explícito limpa o stylist.
type UpdateBookingInput struct {
	Status     optional.Field[string]
	StartDt    optional.Field[time.Time]
	EndDt      optional.Field[time.Time]
	StylistID  optional.Field[uint]
	Note       optional.Field[string]
	TotalPrice optional.Field[float64]
	Services   optional.Field[[]ServiceLineInput]
}
