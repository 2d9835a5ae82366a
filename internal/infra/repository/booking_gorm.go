package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Lookup collaborators
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) ListAdmins(
	ctx context.Context,
) ([]models.User, error) {

	var admins []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ?", models.RoleAdmin).
		Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *BookingGormRepository) GetShopByID(
	ctx context.Context,
	id uint,
) (*models.Shop, error) {

	var shop models.Shop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetStylistByID(
	ctx context.Context,
	id uint,
) (*models.Stylist, error) {

	var stylist models.Stylist
	if err := r.db.WithContext(ctx).First(&stylist, id).Error; err != nil {
		return nil, err
	}
	return &stylist, nil
}

// --------------------------------------------------
// Booking ledger
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Services").
		First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	// booking + linhas entram juntos; a transação garante atomicidade
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) SaveBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).
		Omit("Services").
		Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&models.BookingServiceLine{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

func (r *BookingGormRepository) ReplaceServiceLines(
	ctx context.Context,
	bookingID uint,
	lines []models.BookingServiceLine,
) error {

	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Delete(&models.BookingServiceLine{}).Error; err != nil {
		return err
	}

	for i := range lines {
		lines[i].BookingID = bookingID
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// --------------------------------------------------
// Conflict checker
// --------------------------------------------------

func (r *BookingGormRepository) HasConflict(
	ctx context.Context,
	stylistID uint,
	candidate domain.Interval,
	excludeBookingID uint,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("id")

	// sqlite (testes) não aceita FOR UPDATE
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	q = q.Where(
		"stylist_id = ? AND status IN ? AND start_dt < ? AND end_dt > ?",
		stylistID,
		domain.OccupyingStatuses(),
		candidate.End,
		candidate.Start,
	)

	if excludeBookingID != 0 {
		q = q.Where("id <> ?", excludeBookingID)
	}

	var conflicts []models.Booking
	if err := q.Find(&conflicts).Error; err != nil {
		return false, err
	}
	return len(conflicts) > 0, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) GetWorkShift(
	ctx context.Context,
	stylistID uint,
	weekday time.Weekday,
) (*models.WorkShift, error) {

	var ws models.WorkShift
	if err := r.db.WithContext(ctx).
		Where("stylist_id = ? AND weekday = ?", stylistID, int(weekday)).
		First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *BookingGormRepository) ListOccupyingForDay(
	ctx context.Context,
	stylistID uint,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND status IN ? AND start_dt < ? AND end_dt > ?",
			stylistID,
			domain.OccupyingStatuses(),
			dayEnd,
			dayStart,
		).
		Order("start_dt ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Transactional scope
// --------------------------------------------------

// Transaction roda fn com um repositório amarrado à transação. A checagem
// de conflito e a escrita subsequente precisam viver no mesmo escopo; o
// HasConflict acima trava as linhas ocupantes com FOR UPDATE, e o banco
// deve rodar com isolamento serializable para fechar a janela de corrida
// em ranges ainda vazios.
func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
