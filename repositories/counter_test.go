package repositories

import (
	"testing"

	"github.com/teamtasker/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&models.Counter{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestNextIDSequence(t *testing.T) {
	db := openTestDB(t)
	repo := NewCounterRepository()

	want := []string{"Task-00001", "Task-00002", "Task-00003"}
	for _, w := range want {
		var got string
		err := db.Transaction(func(tx *gorm.DB) error {
			var err error
			got, err = repo.NextID(tx, "Task")
			return err
		})
		if err != nil {
			t.Fatalf("NextID: %v", err)
		}
		if got != w {
			t.Errorf("NextID = %q, want %q", got, w)
		}
	}
}

func TestNextIDPerPrefix(t *testing.T) {
	db := openTestDB(t)
	repo := NewCounterRepository()

	err := db.Transaction(func(tx *gorm.DB) error {
		taskID, err := repo.NextID(tx, "Task")
		if err != nil {
			return err
		}
		userID, err := repo.NextID(tx, "User")
		if err != nil {
			return err
		}
		if taskID != "Task-00001" {
			t.Errorf("taskID = %q, want Task-00001", taskID)
		}
		if userID != "User-00001" {
			t.Errorf("userID = %q, want User-00001", userID)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}
}

func TestNextIDRolledBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewCounterRepository()

	// A rolled-back reservation must not burn a number for the next caller
	_ = db.Transaction(func(tx *gorm.DB) error {
		if _, err := repo.NextID(tx, "Task"); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})

	var got string
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		got, err = repo.NextID(tx, "Task")
		return err
	})
	if err != nil {
		t.Fatalf("NextID: %v", err)
	}
	if got != "Task-00001" {
		t.Errorf("NextID after rollback = %q, want Task-00001", got)
	}
}
