package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"eatda/internal/model"
)

// ==================== BackfillAttemptRepository ====================

type BackfillAttemptRepository interface {
	GetByKakaoID(ctx context.Context, kakaoID string) (*model.BackfillAttempt, error)
	// RecordFailure bumps the attempt count and schedules the next try after backoff(attempts).
	RecordFailure(ctx context.Context, kakaoID, outcome string, now time.Time, backoff func(attempts int) time.Duration) (*model.BackfillAttempt, error)
	Delete(ctx context.Context, kakaoID string) error
}

// ==================== Implementation ====================

type backfillAttemptRepository struct {
	db *gorm.DB
}

func NewBackfillAttemptRepository(db *gorm.DB) BackfillAttemptRepository {
	return &backfillAttemptRepository{db: db}
}

func (r *backfillAttemptRepository) GetByKakaoID(ctx context.Context, kakaoID string) (*model.BackfillAttempt, error) {
	var attempt model.BackfillAttempt
	err := r.db.WithContext(ctx).Where("kakao_id = ?", kakaoID).First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *backfillAttemptRepository) RecordFailure(
	ctx context.Context,
	kakaoID, outcome string,
	now time.Time,
	backoff func(attempts int) time.Duration,
) (*model.BackfillAttempt, error) {
	var attempt model.BackfillAttempt
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("kakao_id = ?", kakaoID).First(&attempt).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if !found {
			attempt = model.BackfillAttempt{KakaoID: kakaoID}
		}

		attempt.Attempts++
		attempt.LastOutcome = outcome
		attempt.NextAttemptAt = now.Add(backoff(attempt.Attempts))

		if found {
			return tx.Save(&attempt).Error
		}
		return tx.Create(&attempt).Error
	})
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *backfillAttemptRepository) Delete(ctx context.Context, kakaoID string) error {
	return r.db.WithContext(ctx).Where("kakao_id = ?", kakaoID).Delete(&model.BackfillAttempt{}).Error
}
