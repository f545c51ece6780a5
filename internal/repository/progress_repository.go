// internal/repository/progress_repository.go
//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"go_verb_master/internal/middleware"
	"go_verb_master/internal/model"

	"gorm.io/gorm"
)

// ProgressRepository stores whole per-user progress records and the
// last-active-user pointer on top of a KVRepository.
type ProgressRepository interface {
	// Load never fails for an absent or unreadable record; it returns a new one.
	Load(ctx context.Context, db *gorm.DB, username string) (*model.ProgressRecord, error)
	Save(ctx context.Context, db *gorm.DB, username string, progress *model.ProgressRecord) error
	Delete(ctx context.Context, db *gorm.DB, username string) error
	LastActiveUser(ctx context.Context, db *gorm.DB) (string, error)
	SetLastActiveUser(ctx context.Context, db *gorm.DB, username string) error
	// ClearLastActiveUser removes the pointer only when it names username.
	ClearLastActiveUser(ctx context.Context, db *gorm.DB, username string) error
}

type kvProgressRepository struct {
	kv KVRepository
}

func NewProgressRepository(kv KVRepository) ProgressRepository {
	if kv == nil {
		kv = NewGormKVRepository()
	}
	return &kvProgressRepository{kv: kv}
}

func (r *kvProgressRepository) Load(ctx context.Context, db *gorm.DB, username string) (*model.ProgressRecord, error) {
	logger := middleware.GetLogger(ctx)
	value, err := r.kv.Get(ctx, db, model.ProgressKey(username))
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewProgressRecord(), nil
		}
		return nil, fmt.Errorf("kvProgressRepository.Load: %w", err)
	}

	progress, err := DecodeProgress(value)
	if err != nil {
		logger.Warn("Stored progress is malformed, starting a new record", "error", err, "user", username)
		return model.NewProgressRecord(), nil
	}
	return progress, nil
}

func (r *kvProgressRepository) Save(ctx context.Context, db *gorm.DB, username string, progress *model.ProgressRecord) error {
	value, err := EncodeProgress(progress)
	if err != nil {
		return fmt.Errorf("kvProgressRepository.Save: %w", err)
	}
	if err := r.kv.Put(ctx, db, model.ProgressKey(username), value); err != nil {
		return fmt.Errorf("kvProgressRepository.Save: %w", err)
	}
	return nil
}

func (r *kvProgressRepository) Delete(ctx context.Context, db *gorm.DB, username string) error {
	if err := r.kv.Delete(ctx, db, model.ProgressKey(username)); err != nil {
		return fmt.Errorf("kvProgressRepository.Delete: %w", err)
	}
	return nil
}

// LastActiveUser returns model.ErrNotFound when nobody has started a session yet.
func (r *kvProgressRepository) LastActiveUser(ctx context.Context, db *gorm.DB) (string, error) {
	value, err := r.kv.Get(ctx, db, model.LastActiveUserKey)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("kvProgressRepository.LastActiveUser: %w", err)
	}
	if value == "" {
		return "", model.ErrNotFound
	}
	return value, nil
}

func (r *kvProgressRepository) SetLastActiveUser(ctx context.Context, db *gorm.DB, username string) error {
	if err := r.kv.Put(ctx, db, model.LastActiveUserKey, username); err != nil {
		return fmt.Errorf("kvProgressRepository.SetLastActiveUser: %w", err)
	}
	return nil
}

func (r *kvProgressRepository) ClearLastActiveUser(ctx context.Context, db *gorm.DB, username string) error {
	current, err := r.LastActiveUser(ctx, db)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("kvProgressRepository.ClearLastActiveUser: %w", err)
	}
	if current != username {
		return nil
	}
	if err := r.kv.Delete(ctx, db, model.LastActiveUserKey); err != nil {
		return fmt.Errorf("kvProgressRepository.ClearLastActiveUser: %w", err)
	}
	return nil
}
