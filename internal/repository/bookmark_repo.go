package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eatda/internal/model"
)

// ErrDuplicateBookmark is returned by Create when the member already bookmarked the store.
var ErrDuplicateBookmark = errors.New("duplicate bookmark")

// ==================== BookmarkRepository ====================

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *model.Bookmark) error
	GetByID(ctx context.Context, id int64) (*model.Bookmark, error)
	Delete(ctx context.Context, id int64) error
	ExistsByMemberAndStore(ctx context.Context, memberID, storeID int64) (bool, error)
	FindRecentByMember(ctx context.Context, memberID int64, limit int) ([]model.Bookmark, error)
}

// ==================== Implementation ====================

type bookmarkRepository struct {
	db *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) BookmarkRepository {
	return &bookmarkRepository{db: db}
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *model.Bookmark) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "member_id"}, {Name: "store_id"}},
			DoNothing: true,
		}).
		Create(bookmark)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDuplicateBookmark
	}
	return nil
}

func (r *bookmarkRepository) GetByID(ctx context.Context, id int64) (*model.Bookmark, error) {
	var bookmark model.Bookmark
	err := r.db.WithContext(ctx).First(&bookmark, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &bookmark, nil
}

func (r *bookmarkRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Bookmark{}, id).Error
}

func (r *bookmarkRepository) ExistsByMemberAndStore(ctx context.Context, memberID, storeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Bookmark{}).
		Where("member_id = ? AND store_id = ?", memberID, storeID).
		Count(&count).Error
	return count > 0, err
}

func (r *bookmarkRepository) FindRecentByMember(ctx context.Context, memberID int64, limit int) ([]model.Bookmark, error) {
	var bookmarks []model.Bookmark
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&bookmarks).Error
	return bookmarks, err
}
