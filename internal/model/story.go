package model

import (
	"strings"

	"eatda/internal/apperr"
)

// Story is a member write-up about a place. It keeps a snapshot of the place as the
// map provider described it, so it can exist before any Store row does.
type Story struct {
	BaseModel

	MemberID              int64         `gorm:"index;not null" json:"member_id"`
	StoreKakaoID          string        `gorm:"size:64;index;not null" json:"store_kakao_id"`
	StoreName             string        `gorm:"size:255;not null" json:"store_name"`
	StoreRoadAddress      string        `gorm:"size:255" json:"store_road_address"`
	StoreLotNumberAddress string        `gorm:"size:255" json:"store_lot_number_address"`
	StoreCategory         StoreCategory `gorm:"size:32" json:"store_category"`
	Description           string        `gorm:"type:text;not null" json:"description"`
	ImageKey              string        `gorm:"size:512;not null" json:"image_key"`
}

type StoryParams struct {
	MemberID              int64
	StoreKakaoID          string
	StoreName             string
	StoreRoadAddress      string
	StoreLotNumberAddress string
	StoreCategory         StoreCategory
	Description           string
	ImageKey              string
}

func NewStory(p StoryParams) (*Story, error) {
	if p.MemberID <= 0 {
		return nil, apperr.New(apperr.StoryMemberRequired)
	}
	if strings.TrimSpace(p.StoreKakaoID) == "" || strings.TrimSpace(p.StoreName) == "" {
		return nil, apperr.New(apperr.InvalidStoryStore)
	}
	if strings.TrimSpace(p.Description) == "" {
		return nil, apperr.New(apperr.InvalidStoryDescription)
	}
	if strings.TrimSpace(p.ImageKey) == "" {
		return nil, apperr.New(apperr.InvalidImageKey)
	}
	category := p.StoreCategory
	if !category.Valid() {
		category = StoreCategoryOther
	}

	return &Story{
		MemberID:              p.MemberID,
		StoreKakaoID:          p.StoreKakaoID,
		StoreName:             p.StoreName,
		StoreRoadAddress:      p.StoreRoadAddress,
		StoreLotNumberAddress: p.StoreLotNumberAddress,
		StoreCategory:         category,
		Description:           p.Description,
		ImageKey:              p.ImageKey,
	}, nil
}

// AddressDistrict is derived from the lot-number address snapshot.
func (s *Story) AddressDistrict() string {
	district, _ := SplitLotNumberAddress(s.StoreLotNumberAddress)
	return district
}

func (s *Story) AddressNeighborhood() string {
	_, neighborhood := SplitLotNumberAddress(s.StoreLotNumberAddress)
	return neighborhood
}
