package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eatda/internal/model"
)

// ==================== StoryRepository ====================

type StoryRepository interface {
	Create(ctx context.Context, story *model.Story) error
	GetByID(ctx context.Context, id int64) (*model.Story, error)
	FindRecent(ctx context.Context, limit int) ([]model.Story, error)
	FindRecentByKakaoID(ctx context.Context, kakaoID string, limit int) ([]model.Story, error)
	// FindPlacesWithoutStore skips places whose backfill attempt is not yet due at now.
	FindPlacesWithoutStore(ctx context.Context, now time.Time, limit int) ([]StoryPlace, error)
}

// StoryPlace is a place referenced by stories but not yet known as a Store.
type StoryPlace struct {
	StoreKakaoID string
	StoreName    string
}

// ==================== Implementation ====================

type storyRepository struct {
	db *gorm.DB
}

func NewStoryRepository(db *gorm.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *storyRepository) GetByID(ctx context.Context, id int64) (*model.Story, error) {
	var story model.Story
	err := r.db.WithContext(ctx).First(&story, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) FindRecent(ctx context.Context, limit int) ([]model.Story, error) {
	var stories []model.Story
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

func (r *storyRepository) FindRecentByKakaoID(ctx context.Context, kakaoID string, limit int) ([]model.Story, error) {
	var stories []model.Story
	err := r.db.WithContext(ctx).
		Where("store_kakao_id = ?", kakaoID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&stories).Error
	return stories, err
}

// FindPlacesWithoutStore lists distinct kakao ids of stories that have no matching store row,
// oldest story first. Places backed off past now are left out so they cannot hold the batch.
func (r *storyRepository) FindPlacesWithoutStore(ctx context.Context, now time.Time, limit int) ([]StoryPlace, error) {
	var places []StoryPlace
	err := r.db.WithContext(ctx).
		Table("stories AS s").
		Select("s.store_kakao_id, MAX(s.store_name) AS store_name").
		Joins("LEFT JOIN stores st ON st.kakao_id = s.store_kakao_id").
		Joins("LEFT JOIN backfill_attempts ba ON ba.kakao_id = s.store_kakao_id").
		Where("st.id IS NULL").
		Where("ba.kakao_id IS NULL OR ba.next_attempt_at <= ?", now).
		Group("s.store_kakao_id").
		Order("MIN(s.created_at)").
		Limit(limit).
		Scan(&places).Error
	return places, err
}
