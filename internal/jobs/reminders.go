package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
)

// Reminders roda no cron e grava uma notificação para cada booking
// ocupante de amanhã (UTC).
type Reminders struct {
	db     *gorm.DB
	store  *notify.Store
	logger *zap.Logger
	cron   *cron.Cron
	spec   string
}

func NewReminders(db *gorm.DB, store *notify.Store, logger *zap.Logger, spec string) *Reminders {
	return &Reminders{
		db:     db,
		store:  store,
		logger: logger,
		cron:   cron.New(),
		spec:   spec,
	}
}

func (r *Reminders) Start() error {
	if _, err := r.cron.AddFunc(r.spec, r.run); err != nil {
		return fmt.Errorf("invalid reminder cron spec %q: %w", r.spec, err)
	}
	r.cron.Start()
	return nil
}

func (r *Reminders) Stop() {
	r.cron.Stop()
}

func (r *Reminders) run() {
	now := time.Now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		Add(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	var bookings []models.Booking
	err := r.db.
		Where("status IN ?", domain.OccupyingStatuses()).
		Where("start_dt >= ? AND start_dt < ?", dayStart, dayEnd).
		Order("start_dt").
		Find(&bookings).Error
	if err != nil {
		r.logger.Warn("reminder query failed", zap.Error(err))
		return
	}

	sent := 0
	for i := range bookings {
		b := &bookings[i]
		body := fmt.Sprintf(
			"You have a booking tomorrow at %s.",
			b.StartDt.UTC().Format("15:04"),
		)

		err := r.store.Save(b.UserID, "Booking reminder", body, map[string]any{
			"booking_id": b.ID,
			"start_dt":   b.StartDt.UTC().Format(time.RFC3339),
		})
		if err != nil {
			r.logger.Warn("reminder save failed",
				zap.Uint("booking_id", b.ID),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	r.logger.Info("booking reminders dispatched",
		zap.Int("total", len(bookings)),
		zap.Int("sent", sent),
	)
}
