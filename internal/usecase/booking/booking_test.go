package booking

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/optional"
)

// ======================================================
// FIXTURE
// ======================================================

// 2026-03-02 é uma segunda-feira; o turno semeado cobre esse weekday.
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

type fixture struct {
	db      *gorm.DB
	repo    *infraRepo.BookingGormRepository
	user    models.User
	other   models.User
	admin   models.User
	shop    models.Shop
	stylist models.Stylist
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// :memory: vive por conexão; uma só conexão mantém o schema visível
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := dbpkg.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	f := &fixture{
		db:   gdb,
		repo: infraRepo.NewBookingGormRepository(gdb),
	}

	f.user = models.User{FullName: "Ana", Email: "ana@example.com", PasswordHash: "x", Role: models.RoleUser}
	f.other = models.User{FullName: "Bia", Email: "bia@example.com", PasswordHash: "x", Role: models.RoleUser}
	f.admin = models.User{FullName: "Root", Email: "root@example.com", PasswordHash: "x", Role: models.RoleAdmin}
	for _, u := range []*models.User{&f.user, &f.other, &f.admin} {
		if err := gdb.Create(u).Error; err != nil {
			t.Fatalf("seed user: %v", err)
		}
	}

	f.shop = models.Shop{Name: "Downtown", IsActive: true}
	if err := gdb.Create(&f.shop).Error; err != nil {
		t.Fatalf("seed shop: %v", err)
	}

	f.stylist = models.Stylist{ShopID: f.shop.ID, Name: "Marco", IsActive: true}
	if err := gdb.Create(&f.stylist).Error; err != nil {
		t.Fatalf("seed stylist: %v", err)
	}

	shift := models.WorkShift{
		StylistID: f.stylist.ID,
		Weekday:   int(time.Monday),
		StartTime: "09:00",
		EndTime:   "17:00",
	}
	if err := gdb.Create(&shift).Error; err != nil {
		t.Fatalf("seed shift: %v", err)
	}

	return f
}

func (f *fixture) actor() Actor {
	return Actor{ID: f.user.ID, Role: f.user.Role}
}

func (f *fixture) adminActor() Actor {
	return Actor{ID: f.admin.ID, Role: f.admin.Role}
}

func lines() []ServiceLineInput {
	return []ServiceLineInput{
		{ServiceID: 1, Price: 50, DurationMin: 60},
	}
}

func (f *fixture) createBooking(t *testing.T, start, end time.Time) *models.Booking {
	t.Helper()
	uc := NewCreateBooking(f.repo, nil, nil)
	b, err := uc.Execute(context.Background(), f.actor(), CreateBookingInput{
		ShopID:    f.shop.ID,
		StylistID: &f.stylist.ID,
		StartDt:   start,
		EndDt:     end,
		Services:  lines(),
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

// ======================================================
// CREATE
// ======================================================

func TestCreateBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := f.createBooking(t, at(10, 0), at(11, 0))

	if b.ID == 0 {
		t.Fatal("booking not persisted")
	}
	if b.Status != string(domain.StatusPending) {
		t.Errorf("status = %s, want pending", b.Status)
	}

	stored, err := f.repo.GetBookingByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(stored.Services) != 1 {
		t.Errorf("service lines = %d, want 1", len(stored.Services))
	}
	if !stored.StartDt.UTC().Equal(at(10, 0)) {
		t.Errorf("start = %v", stored.StartDt)
	}
}

func TestCreateBookingConflict(t *testing.T) {
	f := newFixture(t)
	f.createBooking(t, at(10, 0), at(11, 0))

	uc := NewCreateBooking(f.repo, nil, nil)
	_, err := uc.Execute(context.Background(), f.actor(), CreateBookingInput{
		ShopID:    f.shop.ID,
		StylistID: &f.stylist.ID,
		StartDt:   at(10, 30),
		EndDt:     at(11, 30),
		Services:  lines(),
	})
	if !httperr.IsBusiness(err, "stylist_already_booked") {
		t.Fatalf("err = %v, want stylist_already_booked", err)
	}
}

func TestCreateBookingBackToBack(t *testing.T) {
	f := newFixture(t)
	f.createBooking(t, at(10, 0), at(11, 0))

	// [11:00, 12:00) só encosta na borda; intervalo meio-aberto não conflita
	f.createBooking(t, at(11, 0), at(12, 0))
}

func TestCreateBookingCancelledRangeIsReusable(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(10, 0), at(11, 0))

	if err := f.db.Model(b).Update("status", string(domain.StatusCancelled)).Error; err != nil {
		t.Fatalf("cancel: %v", err)
	}

	f.createBooking(t, at(10, 0), at(11, 0))
}

func TestCreateBookingWithoutStylistNeverConflicts(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil, nil)

	in := CreateBookingInput{
		ShopID:   f.shop.ID,
		StartDt:  at(10, 0),
		EndDt:    at(11, 0),
		Services: lines(),
	}
	for i := 0; i < 2; i++ {
		if _, err := uc.Execute(context.Background(), f.actor(), in); err != nil {
			t.Fatalf("booking %d: %v", i, err)
		}
	}
}

func TestCreateBookingForOtherUser(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil, nil)
	ctx := context.Background()

	in := CreateBookingInput{
		ShopID:        f.shop.ID,
		StartDt:       at(10, 0),
		EndDt:         at(11, 0),
		Services:      lines(),
		SubjectUserID: &f.other.ID,
	}

	if _, err := uc.Execute(ctx, f.actor(), in); !httperr.IsBusiness(err, "cannot_book_for_other_user") {
		t.Fatalf("non-admin err = %v, want cannot_book_for_other_user", err)
	}

	b, err := uc.Execute(ctx, f.adminActor(), in)
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if b.UserID != f.other.ID {
		t.Errorf("user = %d, want %d", b.UserID, f.other.ID)
	}

	missing := uint(9999)
	in.SubjectUserID = &missing
	in.StartDt, in.EndDt = at(12, 0), at(13, 0)
	if _, err := uc.Execute(ctx, f.adminActor(), in); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("missing subject err = %v, want user_not_found", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture(t)
	uc := NewCreateBooking(f.repo, nil, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, f.actor(), CreateBookingInput{
		ShopID:   f.shop.ID,
		StartDt:  at(11, 0),
		EndDt:    at(10, 0),
		Services: lines(),
	})
	if !httperr.IsBusiness(err, "start_must_be_before_end") {
		t.Errorf("inverted range err = %v", err)
	}

	_, err = uc.Execute(ctx, f.actor(), CreateBookingInput{
		ShopID:  f.shop.ID,
		StartDt: at(10, 0),
		EndDt:   at(11, 0),
	})
	if !httperr.IsBusiness(err, "services_required") {
		t.Errorf("empty services err = %v", err)
	}

	_, err = uc.Execute(ctx, f.actor(), CreateBookingInput{
		ShopID:   9999,
		StartDt:  at(10, 0),
		EndDt:    at(11, 0),
		Services: lines(),
	})
	if !httperr.IsBusiness(err, "shop_not_found") {
		t.Errorf("missing shop err = %v", err)
	}

	missing := uint(9999)
	_, err = uc.Execute(ctx, f.actor(), CreateBookingInput{
		ShopID:    f.shop.ID,
		StylistID: &missing,
		StartDt:   at(10, 0),
		EndDt:     at(11, 0),
		Services:  lines(),
	})
	if !httperr.IsBusiness(err, "stylist_not_found") {
		t.Errorf("missing stylist err = %v", err)
	}
}

// ======================================================
// UPDATE
// ======================================================

func TestUpdateBookingRescheduleExcludesItself(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(10, 0), at(11, 0))

	uc := NewUpdateBooking(f.repo, nil)
	updated, err := uc.Execute(context.Background(), b.ID, UpdateBookingInput{
		StartDt: optional.Of(at(10, 30)),
		EndDt:   optional.Of(at(11, 30)),
	})
	if err != nil {
		t.Fatalf("reschedule onto own range: %v", err)
	}
	if !updated.StartDt.UTC().Equal(at(10, 30)) || !updated.EndDt.UTC().Equal(at(11, 30)) {
		t.Errorf("range = [%v, %v)", updated.StartDt, updated.EndDt)
	}
}

func TestUpdateBookingConflictOnMove(t *testing.T) {
	f := newFixture(t)
	f.createBooking(t, at(10, 0), at(11, 0))
	second := f.createBooking(t, at(14, 0), at(15, 0))

	uc := NewUpdateBooking(f.repo, nil)
	_, err := uc.Execute(context.Background(), second.ID, UpdateBookingInput{
		StartDt: optional.Of(at(10, 30)),
		EndDt:   optional.Of(at(11, 30)),
	})
	if !httperr.IsBusiness(err, "stylist_already_booked") {
		t.Fatalf("err = %v, want stylist_already_booked", err)
	}
}

func TestUpdateBookingServiceLinesRecompute(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(10, 0), at(11, 0))

	uc := NewUpdateBooking(f.repo, nil)
	updated, err := uc.Execute(context.Background(), b.ID, UpdateBookingInput{
		Services: optional.Of([]ServiceLineInput{
			{ServiceID: 1, Price: 40, DurationMin: 30},
			{ServiceID: 2, Price: 20, DurationMin: 15},
		}),
	})
	if err != nil {
		t.Fatalf("update lines: %v", err)
	}

	if updated.TotalPrice != 60 {
		t.Errorf("total = %v, want 60", updated.TotalPrice)
	}
	if !updated.EndDt.UTC().Equal(at(10, 45)) {
		t.Errorf("end = %v, want 10:45", updated.EndDt)
	}
	if len(updated.Services) != 2 {
		t.Errorf("lines = %d, want 2", len(updated.Services))
	}
}

func TestUpdateBookingServiceLinesCanCauseConflict(t *testing.T) {
	f := newFixture(t)
	f.createBooking(t, at(11, 0), at(12, 0))
	earlier := f.createBooking(t, at(10, 0), at(11, 0))

	// só as linhas mudam, mas o novo end_dt invade o booking seguinte
	uc := NewUpdateBooking(f.repo, nil)
	_, err := uc.Execute(context.Background(), earlier.ID, UpdateBookingInput{
		Services: optional.Of([]ServiceLineInput{
			{ServiceID: 1, Price: 80, DurationMin: 90},
		}),
	})
	if !httperr.IsBusiness(err, "stylist_already_booked") {
		t.Fatalf("err = %v, want stylist_already_booked", err)
	}
}

func TestUpdateBookingStatusMachine(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(10, 0), at(11, 0))
	uc := NewUpdateBooking(f.repo, nil)
	ctx := context.Background()

	updated, err := uc.Execute(ctx, b.ID, UpdateBookingInput{
		Status: optional.Of(string(domain.StatusApproved)),
	})
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if updated.Status != string(domain.StatusApproved) {
		t.Fatalf("status = %s", updated.Status)
	}

	if _, err := uc.Execute(ctx, b.ID, UpdateBookingInput{
		Status: optional.Of("rejected"),
	}); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("unknown status err = %v", err)
	}

	updated, err = uc.Execute(ctx, b.ID, UpdateBookingInput{
		Status: optional.Of(string(domain.StatusCompleted)),
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if _, err := uc.Execute(ctx, b.ID, UpdateBookingInput{
		Status: optional.Of(string(domain.StatusPending)),
	}); !httperr.IsKind(err, httperr.KindInvalidState) {
		t.Errorf("terminal transition err = %v", err)
	}
}

func TestUpdateBookingClearStylist(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(10, 0), at(11, 0))

	uc := NewUpdateBooking(f.repo, nil)
	updated, err := uc.Execute(context.Background(), b.ID, UpdateBookingInput{
		StylistID: optional.Null[uint](),
	})
	if err != nil {
		t.Fatalf("clear stylist: %v", err)
	}
	if updated.StylistID != nil {
		t.Errorf("stylist = %v, want nil", *updated.StylistID)
	}

	// range liberado: outro booking pode ocupar o mesmo horário
	f.createBooking(t, at(10, 0), at(11, 0))
}

func TestUpdateBookingNotFound(t *testing.T) {
	f := newFixture(t)
	uc := NewUpdateBooking(f.repo, nil)

	_, err := uc.Execute(context.Background(), 9999, UpdateBookingInput{
		Note: optional.Of("x"),
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("err = %v, want booking_not_found", err)
	}
}

// ======================================================
// CANCEL
// ======================================================

func TestCancelBooking(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(14, 0), at(15, 0))

	uc := NewCancelBooking(f.repo, nil)
	uc.now = func() time.Time { return at(10, 0) }

	cancelled, err := uc.Execute(context.Background(), b.ID, f.actor(), "family emergency")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != string(domain.StatusCancelled) {
		t.Errorf("status = %s", cancelled.Status)
	}
	if cancelled.Note != "[cancelled] family emergency" {
		t.Errorf("note = %q", cancelled.Note)
	}

	// segundo cancel bate no status terminal
	if _, err := uc.Execute(context.Background(), b.ID, f.actor(), ""); !httperr.IsBusiness(err, "booking_not_cancellable") {
		t.Errorf("double cancel err = %v", err)
	}
}

func TestCancelBookingOwnerOnly(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(14, 0), at(15, 0))

	uc := NewCancelBooking(f.repo, nil)
	uc.now = func() time.Time { return at(10, 0) }

	_, err := uc.Execute(context.Background(), b.ID, Actor{ID: f.other.ID, Role: models.RoleUser}, "")
	if !httperr.IsBusiness(err, "not_booking_owner") {
		t.Fatalf("err = %v, want not_booking_owner", err)
	}
}

func TestCancelBookingAfterStart(t *testing.T) {
	f := newFixture(t)
	b := f.createBooking(t, at(14, 0), at(15, 0))

	uc := NewCancelBooking(f.repo, nil)
	uc.now = func() time.Time { return at(14, 0) }

	_, err := uc.Execute(context.Background(), b.ID, f.actor(), "")
	if !httperr.IsBusiness(err, "booking_already_started") {
		t.Fatalf("err = %v, want booking_already_started", err)
	}
}

// ======================================================
// DELETE
// ======================================================

func TestDeleteBooking(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.createBooking(t, at(10, 0), at(11, 0))

	uc := NewDeleteBooking(f.repo, nil)
	if err := uc.Execute(ctx, b.ID, f.actor()); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.repo.GetBookingByID(ctx, b.ID); err == nil {
		t.Error("booking still present after delete")
	}

	var lineCount int64
	f.db.Model(&models.BookingServiceLine{}).Where("booking_id = ?", b.ID).Count(&lineCount)
	if lineCount != 0 {
		t.Errorf("orphan service lines = %d", lineCount)
	}
}

func TestDeleteBookingRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	uc := NewDeleteBooking(f.repo, nil)

	b := f.createBooking(t, at(10, 0), at(11, 0))

	err := uc.Execute(ctx, b.ID, Actor{ID: f.other.ID, Role: models.RoleUser})
	if !httperr.IsBusiness(err, "not_booking_owner") {
		t.Fatalf("non-owner err = %v", err)
	}

	if err := f.db.Model(b).Update("status", string(domain.StatusCompleted)).Error; err != nil {
		t.Fatal(err)
	}

	err = uc.Execute(ctx, b.ID, f.actor())
	if !httperr.IsBusiness(err, "booking_not_deletable") {
		t.Fatalf("owner on completed err = %v", err)
	}

	// admin deleta incondicionalmente
	if err := uc.Execute(ctx, b.ID, f.adminActor()); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	if err := uc.Execute(ctx, 9999, f.adminActor()); !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("missing booking err = %v", err)
	}
}

// ======================================================
// AVAILABILITY / DAY VIEW
// ======================================================

func TestGetAvailability(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createBooking(t, at(12, 0), at(13, 0))

	uc := NewGetAvailability(f.repo, nil)
	slots, err := uc.Execute(ctx, f.stylist.ID, monday)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}

	want := []domain.Interval{
		{Start: at(9, 0), End: at(12, 0)},
		{Start: at(13, 0), End: at(17, 0)},
	}
	if len(slots) != len(want) {
		t.Fatalf("slots = %v, want %v", slots, want)
	}
	for i := range want {
		if !slots[i].Start.Equal(want[i].Start) || !slots[i].End.Equal(want[i].End) {
			t.Errorf("slot %d = %v, want %v", i, slots[i], want[i])
		}
	}
}

func TestGetAvailabilityIgnoresNonOccupying(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	b := f.createBooking(t, at(12, 0), at(13, 0))

	if err := f.db.Model(b).Update("status", string(domain.StatusCancelled)).Error; err != nil {
		t.Fatal(err)
	}

	uc := NewGetAvailability(f.repo, nil)
	slots, err := uc.Execute(ctx, f.stylist.ID, monday)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 1 || !slots[0].Start.Equal(at(9, 0)) || !slots[0].End.Equal(at(17, 0)) {
		t.Errorf("slots = %v, want full shift", slots)
	}
}

func TestGetAvailabilityDayOff(t *testing.T) {
	f := newFixture(t)

	uc := NewGetAvailability(f.repo, nil)
	tuesday := monday.Add(24 * time.Hour)
	slots, err := uc.Execute(context.Background(), f.stylist.ID, tuesday)
	if err != nil {
		t.Fatalf("availability: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("slots = %v, want empty on a day off", slots)
	}

	if _, err := uc.Execute(context.Background(), 9999, monday); !httperr.IsBusiness(err, "stylist_not_found") {
		t.Errorf("missing stylist err = %v", err)
	}
}

func TestListStylistDay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	late := f.createBooking(t, at(14, 0), at(15, 0))
	early := f.createBooking(t, at(10, 0), at(11, 0))
	cancelledB := f.createBooking(t, at(12, 0), at(13, 0))
	if err := f.db.Model(cancelledB).Update("status", string(domain.StatusCancelled)).Error; err != nil {
		t.Fatal(err)
	}

	uc := NewListStylistDay(f.repo)
	got, err := uc.Execute(ctx, f.stylist.ID, monday)
	if err != nil {
		t.Fatalf("list day: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("bookings = %d, want 2", len(got))
	}
	if got[0].ID != early.ID || got[1].ID != late.ID {
		t.Errorf("order = [%d, %d], want [%d, %d]", got[0].ID, got[1].ID, early.ID, late.ID)
	}
}
