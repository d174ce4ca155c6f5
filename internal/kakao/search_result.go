package kakao

import (
	"math"
	"strconv"
)

// StoreSearchResult is one place returned by a keyword search. It is transient:
// never cached and never persisted as-is. Documents with malformed coordinates
// never become results.
type StoreSearchResult struct {
	KakaoID           string
	CategoryGroupCode string // "FD6" restaurant, "CE7" cafe
	CategoryName      string // e.g. "음식점 > 한식 > 국밥"
	PhoneNumber       string
	PlaceName         string
	PlaceURL          string
	LotNumberAddress  string
	RoadAddress       string // may be empty
	Latitude          float64
	Longitude         float64
}

// ==================== wire format ====================

type keywordSearchResponse struct {
	Meta      searchMeta      `json:"meta"`
	Documents []placeDocument `json:"documents"`
}

type searchMeta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}

type placeDocument struct {
	ID                string `json:"id"`
	PlaceName         string `json:"place_name"`
	CategoryName      string `json:"category_name"`
	CategoryGroupCode string `json:"category_group_code"`
	CategoryGroupName string `json:"category_group_name"`
	Phone             string `json:"phone"`
	AddressName       string `json:"address_name"`
	RoadAddressName   string `json:"road_address_name"`
	X                 string `json:"x"` // longitude
	Y                 string `json:"y"` // latitude
	PlaceURL          string `json:"place_url"`
	Distance          string `json:"distance"`
}

// toResult reports false for documents without usable coordinates.
func (d placeDocument) toResult() (StoreSearchResult, bool) {
	lat, ok := parseCoordinate(d.Y, 90)
	if !ok {
		return StoreSearchResult{}, false
	}
	lng, ok := parseCoordinate(d.X, 180)
	if !ok {
		return StoreSearchResult{}, false
	}
	return StoreSearchResult{
		KakaoID:           d.ID,
		CategoryGroupCode: d.CategoryGroupCode,
		CategoryName:      d.CategoryName,
		PhoneNumber:       d.Phone,
		PlaceName:         d.PlaceName,
		PlaceURL:          d.PlaceURL,
		LotNumberAddress:  d.AddressName,
		RoadAddress:       d.RoadAddressName,
		Latitude:          lat,
		Longitude:         lng,
	}, true
}

func parseCoordinate(raw string, limit float64) (float64, bool) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > limit {
		return 0, false
	}
	return v, true
}
