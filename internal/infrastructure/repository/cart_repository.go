package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/salepoint/salepoint-api/internal/domain/entity"
	domainRepo "github.com/salepoint/salepoint-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository creates a cart repository backed by the terminal's
// key-value storage table.
func NewCartRepository(db *gorm.DB) domainRepo.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Load(ctx context.Context) ([]entity.CartLine, []int, error) {
	lines := []entity.CartLine{}
	editedIDs := []int{}

	var cartEntry entity.StorageEntry
	err := r.db.WithContext(ctx).First(&cartEntry, "key = ?", entity.StorageKeyCart).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first run, nothing stored yet
	case err != nil:
		return nil, nil, fmt.Errorf("load cart: %w", err)
	default:
		if err := json.Unmarshal([]byte(cartEntry.Value), &lines); err != nil {
			return nil, nil, fmt.Errorf("decode stored cart: %w", err)
		}
	}

	var editedEntry entity.StorageEntry
	err = r.db.WithContext(ctx).First(&editedEntry, "key = ?", entity.StorageKeyEdited).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, nil, fmt.Errorf("load edited set: %w", err)
	default:
		if err := json.Unmarshal([]byte(editedEntry.Value), &editedIDs); err != nil {
			return nil, nil, fmt.Errorf("decode stored edited set: %w", err)
		}
	}

	return lines, editedIDs, nil
}

func (r *cartRepository) Save(ctx context.Context, lines []entity.CartLine, editedIDs []int) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	if editedIDs == nil {
		editedIDs = []int{}
	}

	cartJSON, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	editedJSON, err := json.Marshal(editedIDs)
	if err != nil {
		return fmt.Errorf("encode edited set: %w", err)
	}

	// Both keys commit together or not at all, so a restart never observes a
	// cart written without its edited set.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entries := []entity.StorageEntry{
			{Key: entity.StorageKeyCart, Value: string(cartJSON)},
			{Key: entity.StorageKeyEdited, Value: string(editedJSON)},
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&entries).Error
	})
}

func (r *cartRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Delete(&entity.StorageEntry{}, "key IN ?", []string{entity.StorageKeyCart, entity.StorageKeyEdited}).
		Error
}
