// Package db opens the GORM connections for the three logical stores.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "campuschain_backend/internal/feature/auth/domain/entity"
	evententity "campuschain_backend/internal/feature/event/domain/entity"
	profileentity "campuschain_backend/internal/feature/profile/domain/entity"
)

// connectTimeout bounds how long startup waits for a store before the
// process refuses to serve.
const connectTimeout = 30 * time.Second

// Open connects to one logical store, retrying until connectTimeout.
// name is used only for logging ("loginDB", "studentDB", "alumniDB").
func Open(dsn, name string) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			slog.Info("connected to store", "store", name)
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("connect to %s failed after %s: %w", name, connectTimeout, err)
		}
		slog.Warn("store connect failed, retrying", "store", name, "error", err)
		time.Sleep(3 * time.Second)
	}
}

// MigrateLogin creates the credential table on the login store.
func MigrateLogin(db *gorm.DB) error {
	return db.AutoMigrate(&authentity.Credential{})
}

// MigrateProfiles creates the profile table on a role store. The event table
// shares the student store's database, as the original deployment did.
func MigrateProfiles(db *gorm.DB) error {
	return db.AutoMigrate(&profileentity.Profile{})
}

// MigrateEvents creates the event table.
func MigrateEvents(db *gorm.DB) error {
	return db.AutoMigrate(&evententity.Event{})
}
