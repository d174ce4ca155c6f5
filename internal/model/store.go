package model

import (
	"strings"

	"eatda/internal/apperr"
)

// ==================== Store ====================

// Store is a restaurant known to the service, keyed by the map provider's place id.
type Store struct {
	BaseModel

	KakaoID     string        `gorm:"size:64;uniqueIndex;not null" json:"kakao_id"`
	Name        string        `gorm:"size:255;not null" json:"name"`
	Category    StoreCategory `gorm:"size:32;index;not null" json:"category"`
	PhoneNumber string        `gorm:"size:32" json:"phone_number"`
	PlaceURL    string        `gorm:"size:512" json:"place_url"`

	Address     StoreAddress `gorm:"embedded" json:"address"`
	Coordinates Coordinates  `gorm:"embedded" json:"coordinates"`
}

// StoreAddress holds both address forms and the parts derived from the lot-number form.
type StoreAddress struct {
	RoadAddress      string `gorm:"size:255" json:"road_address"`
	LotNumberAddress string `gorm:"size:255" json:"lot_number_address"`
	District         string `gorm:"size:64;index" json:"district"`
	Neighborhood     string `gorm:"size:64" json:"neighborhood"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type StoreParams struct {
	KakaoID          string
	Name             string
	Category         StoreCategory
	PhoneNumber      string
	PlaceURL         string
	RoadAddress      string
	LotNumberAddress string
	Latitude         float64
	Longitude        float64
}

// NewStore validates params and derives district and neighborhood from the lot-number address.
func NewStore(p StoreParams) (*Store, error) {
	if strings.TrimSpace(p.KakaoID) == "" {
		return nil, apperr.New(apperr.InvalidStoreKakaoID)
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, apperr.New(apperr.InvalidStoreName)
	}
	if !p.Category.Valid() {
		return nil, apperr.New(apperr.InvalidStoreCategory)
	}
	coordinates, err := NewCoordinates(p.Latitude, p.Longitude)
	if err != nil {
		return nil, err
	}

	return &Store{
		KakaoID:     p.KakaoID,
		Name:        p.Name,
		Category:    p.Category,
		PhoneNumber: p.PhoneNumber,
		PlaceURL:    p.PlaceURL,
		Address:     NewStoreAddress(p.RoadAddress, p.LotNumberAddress),
		Coordinates: coordinates,
	}, nil
}

func NewStoreAddress(roadAddress, lotNumberAddress string) StoreAddress {
	district, neighborhood := SplitLotNumberAddress(lotNumberAddress)
	return StoreAddress{
		RoadAddress:      roadAddress,
		LotNumberAddress: lotNumberAddress,
		District:         district,
		Neighborhood:     neighborhood,
	}
}

// SplitLotNumberAddress returns the second and third whitespace-separated tokens,
// e.g. "서울 강남구 대치동 896-33" yields ("강남구", "대치동"). Missing tokens are "".
func SplitLotNumberAddress(lotNumberAddress string) (district, neighborhood string) {
	parts := strings.Fields(lotNumberAddress)
	if len(parts) > 1 {
		district = parts[1]
	}
	if len(parts) > 2 {
		neighborhood = parts[2]
	}
	return district, neighborhood
}

func NewCoordinates(latitude, longitude float64) (Coordinates, error) {
	if latitude < -90 || latitude > 90 || longitude < -180 || longitude > 180 {
		return Coordinates{}, apperr.New(apperr.InvalidStoreCoordinates)
	}
	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}
