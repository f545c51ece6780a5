//go:generate mockery --name KVRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository is the key/value contract progress persistence is built on.
// Put replaces any existing value.
type KVRepository interface {
	Get(ctx context.Context, db *gorm.DB, key string) (string, error)
	Put(ctx context.Context, db *gorm.DB, key, value string) error
	Delete(ctx context.Context, db *gorm.DB, key string) error
}

type gormKVRepository struct{}

func NewGormKVRepository() KVRepository {
	return &gormKVRepository{}
}

// Get returns model.ErrNotFound when the key is absent.
func (r *gormKVRepository) Get(ctx context.Context, db *gorm.DB, key string) (string, error) {
	logger := middleware.GetLogger(ctx)
	var entry model.KVEntry
	result := db.WithContext(ctx).Where("key = ?", key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", model.ErrNotFound
		}
		logger.Error("Error reading key from DB", "error", result.Error, "key", key)
		return "", fmt.Errorf("gormKVRepository.Get: %w", result.Error)
	}
	return entry.Value, nil
}

func (r *gormKVRepository) Put(ctx context.Context, db *gorm.DB, key, value string) error {
	logger := middleware.GetLogger(ctx)
	entry := model.KVEntry{Key: key, Value: value}
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry)
	if result.Error != nil {
		logger.Error("Error writing key to DB", "error", result.Error, "key", key)
		return fmt.Errorf("gormKVRepository.Put: %w", result.Error)
	}
	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (r *gormKVRepository) Delete(ctx context.Context, db *gorm.DB, key string) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{})
	if result.Error != nil {
		logger.Error("Error deleting key from DB", "error", result.Error, "key", key)
		return fmt.Errorf("gormKVRepository.Delete: %w", result.Error)
	}
	return nil
}
