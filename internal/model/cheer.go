package model

import (
	"strings"

	"eatda/internal/apperr"
)

// Cheer is a member's photo recommendation of a store. Its image key feeds the
// store preview and gallery.
type Cheer struct {
	BaseModel

	MemberID    int64  `gorm:"index;not null" json:"member_id"`
	StoreID     int64  `gorm:"index;not null" json:"store_id"`
	Description string `gorm:"type:text" json:"description"`
	ImageKey    string `gorm:"size:512;not null" json:"image_key"`
}

func NewCheer(memberID, storeID int64, description, imageKey string) (*Cheer, error) {
	if memberID <= 0 {
		return nil, apperr.New(apperr.MemberNotFound)
	}
	if storeID <= 0 {
		return nil, apperr.New(apperr.StoreNotFound)
	}
	if strings.TrimSpace(imageKey) == "" {
		return nil, apperr.New(apperr.InvalidImageKey)
	}
	return &Cheer{
		MemberID:    memberID,
		StoreID:     storeID,
		Description: description,
		ImageKey:    imageKey,
	}, nil
}
