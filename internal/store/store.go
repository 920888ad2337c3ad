// Package store is the client-side durable storage: an opaque key/value
// table in a local SQLite file, holding the two records the app persists.
package store

import (
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// Logical names of the two durable records.
const (
	KeySavedRecipes = "savedRecipes"
	KeyProfile      = "nutriProfile"
)

type entry struct {
	Name  string `gorm:"primaryKey"`
	Value string
}

func (entry) TableName() string { return "entries" }

// Store persists opaque values keyed by logical name.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := db.AutoMigrate(&entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store: %w", err)
	}
	return &Store{db: db}, nil
}

// Load returns the value stored under name. A missing name is reported as
// ok=false, not an error.
func (s *Store) Load(name string) ([]byte, bool, error) {
	var e entry
	err := s.db.First(&e, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to load %q: %w", name, err)
	}
	return []byte(e.Value), true, nil
}

// Save upserts the full value under name.
func (s *Store) Save(name string, value []byte) error {
	e := entry{Name: name, Value: string(value)}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&e).Error
	if err != nil {
		return fmt.Errorf("failed to save %q: %w", name, err)
	}
	return nil
}
