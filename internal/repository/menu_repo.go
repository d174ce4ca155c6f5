package repository

import (
	"context"

	"gorm.io/gorm"

	"eatda/internal/model"
)

type MenuRepository interface {
	FindByStoreID(ctx context.Context, storeID int64) ([]model.Menu, error)
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) FindByStoreID(ctx context.Context, storeID int64) ([]model.Menu, error) {
	var menus []model.Menu
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&menus).Error
	return menus, err
}
