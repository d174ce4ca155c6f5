package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eatda/internal/model"
)

// ==================== StoreRepository ====================

// StoreRepository reads and creates stores.
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	GetByKakaoID(ctx context.Context, kakaoID string) (*model.Store, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Store, error)
	FindRecent(ctx context.Context, limit int) ([]model.Store, error)
	FindRecentByCategory(ctx context.Context, category model.StoreCategory, limit int) ([]model.Store, error)
	FindOrCreate(ctx context.Context, store *model.Store) (*model.Store, error)
}

// ==================== Implementation ====================

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

// GetByID returns nil, nil when no store has the id.
func (r *storeRepository) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) GetByKakaoID(ctx context.Context, kakaoID string) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).Where("kakao_id = ?", kakaoID).First(&store).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Store, error) {
	var stores []model.Store
	if len(ids) == 0 {
		return stores, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&stores).Error
	return stores, err
}

// FindRecent lists the newest stores. Ties on created_at fall back to id.
func (r *storeRepository) FindRecent(ctx context.Context, limit int) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&stores).Error
	return stores, err
}

func (r *storeRepository) FindRecentByCategory(ctx context.Context, category model.StoreCategory, limit int) ([]model.Store, error) {
	var stores []model.Store
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&stores).Error
	return stores, err
}

// FindOrCreate inserts the store unless its kakao id already exists and returns
// the persisted row either way. Concurrent first references converge on one row.
func (r *storeRepository) FindOrCreate(ctx context.Context, store *model.Store) (*model.Store, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "kakao_id"}},
			DoNothing: true,
		}).
		Create(store).Error
	if err != nil {
		return nil, err
	}
	return r.GetByKakaoID(ctx, store.KakaoID)
}
