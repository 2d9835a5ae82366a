package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Lookup collaborators --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	ListAdmins(
		ctx context.Context,
	) ([]models.User, error)

	GetShopByID(
		ctx context.Context,
		id uint,
	) (*models.Shop, error)

	GetStylistByID(
		ctx context.Context,
		id uint,
	) (*models.Stylist, error)

	// -------- Booking ledger --------
	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SaveBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	ReplaceServiceLines(
		ctx context.Context,
		bookingID uint,
		lines []models.BookingServiceLine,
	) error

	// -------- Conflict checker --------
	HasConflict(
		ctx context.Context,
		stylistID uint,
		candidate Interval,
		excludeBookingID uint,
	) (bool, error)

	// -------- Availability --------
	GetWorkShift(
		ctx context.Context,
		stylistID uint,
		weekday time.Weekday,
	) (*models.WorkShift, error)

	ListOccupyingForDay(
		ctx context.Context,
		stylistID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Booking, error)

	// -------- Transactional scope --------
	// Transaction executa fn num escopo transacional único; commit ou
	// rollback acontecem em todo caminho de saída.
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
