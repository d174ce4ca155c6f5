package repository

import (
	"context"

	"gorm.io/gorm"

	"eatda/internal/model"
)

// ==================== CheerRepository ====================

// CheerRepository owns the store-to-image associations.
type CheerRepository interface {
	Create(ctx context.Context, cheer *model.Cheer) error
	// FindRecentImageKeys maps each store id to its newest image key. Stores without a cheer are absent.
	FindRecentImageKeys(ctx context.Context, storeIDs []int64) (map[int64]string, error)
	FindAllImageKeys(ctx context.Context, storeID int64) ([]string, error)
	FindRecent(ctx context.Context, limit int) ([]model.Cheer, error)
}

// ==================== Implementation ====================

type cheerRepository struct {
	db *gorm.DB
}

func NewCheerRepository(db *gorm.DB) CheerRepository {
	return &cheerRepository{db: db}
}

func (r *cheerRepository) Create(ctx context.Context, cheer *model.Cheer) error {
	return r.db.WithContext(ctx).Create(cheer).Error
}

type storeImageKey struct {
	StoreID  int64
	ImageKey string
}

func (r *cheerRepository) FindRecentImageKeys(ctx context.Context, storeIDs []int64) (map[int64]string, error) {
	result := make(map[int64]string, len(storeIDs))
	if len(storeIDs) == 0 {
		return result, nil
	}

	var rows []storeImageKey
	err := r.db.WithContext(ctx).
		Table("cheers AS c").
		Select("c.store_id, c.image_key").
		Where("c.store_id IN ?", storeIDs).
		Where("c.id = (SELECT c2.id FROM cheers c2 WHERE c2.store_id = c.store_id ORDER BY c2.created_at DESC, c2.id DESC LIMIT 1)").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.StoreID] = row.ImageKey
	}
	return result, nil
}

func (r *cheerRepository) FindAllImageKeys(ctx context.Context, storeID int64) ([]string, error) {
	keys := make([]string, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Cheer{}).
		Where("store_id = ?", storeID).
		Order("created_at DESC, id DESC").
		Pluck("image_key", &keys).Error
	return keys, err
}

func (r *cheerRepository) FindRecent(ctx context.Context, limit int) ([]model.Cheer, error) {
	var cheers []model.Cheer
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&cheers).Error
	return cheers, err
}
