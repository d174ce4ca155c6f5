package model

import "time"

// BackfillAttempt tracks a place the store backfill could not resolve.
// The place is skipped until NextAttemptAt.
type BackfillAttempt struct {
	KakaoID       string    `gorm:"primaryKey;size:64" json:"kakao_id"`
	Attempts      int       `gorm:"not null" json:"attempts"`
	LastOutcome   string    `gorm:"size:16" json:"last_outcome"`
	NextAttemptAt time.Time `gorm:"index;not null" json:"next_attempt_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
