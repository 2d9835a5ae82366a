package notify

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gdb.AutoMigrate(&models.User{}, &models.Notification{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

func TestStoreSave(t *testing.T) {
	gdb := newTestDB(t)
	store := NewStore(gdb)

	err := store.Save(1, "Booking confirmed", "See you tomorrow.", map[string]any{
		"booking_id": 42,
	})
	if err != nil {
		t.Fatalf("Save() = %v", err)
	}

	var n models.Notification
	if err := gdb.First(&n).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.UserID != 1 || n.Title != "Booking confirmed" {
		t.Errorf("notification = %+v", n)
	}
	if n.DataJSON != `{"booking_id":42}` {
		t.Errorf("data_json = %q", n.DataJSON)
	}
	if n.IsRead {
		t.Error("new notification must start unread")
	}
}

func TestStoreSaveNilData(t *testing.T) {
	gdb := newTestDB(t)
	store := NewStore(gdb)

	if err := store.Save(1, "t", "b", nil); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	var n models.Notification
	if err := gdb.First(&n).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if n.DataJSON != "" {
		t.Errorf("data_json = %q, want empty", n.DataJSON)
	}
}

func TestDispatcherDeliversAsync(t *testing.T) {
	gdb := newTestDB(t)
	d := NewDispatcher(NewStore(gdb), zap.NewNop())

	d.Dispatch(Event{UserID: 7, Title: "New booking", Body: "x"})

	// entrega é assíncrona; espera com deadline
	deadline := time.Now().Add(2 * time.Second)
	for {
		var count int64
		gdb.Model(&models.Notification{}).Where("user_id = ?", 7).Count(&count)
		if count == 1 {
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("notification not delivered before deadline")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
