package model

import "eatda/internal/apperr"

// seoulDistricts is the closed set of areas a member can pick as their interest area.
var seoulDistricts = []string{
	"강남구", "강동구", "강북구", "강서구", "관악구",
	"광진구", "구로구", "금천구", "노원구", "도봉구",
	"동대문구", "동작구", "마포구", "서대문구", "서초구",
	"성동구", "성북구", "송파구", "양천구", "영등포구",
	"용산구", "은평구", "종로구", "중구", "중랑구",
}

// InterestAreas returns the selectable districts in display order.
func InterestAreas() []string {
	return append([]string(nil), seoulDistricts...)
}

// ValidateInterestArea accepts an empty value (no preference) or a known district.
func ValidateInterestArea(area string) error {
	if area == "" {
		return nil
	}
	for _, d := range seoulDistricts {
		if d == area {
			return nil
		}
	}
	return apperr.New(apperr.InvalidInterestArea)
}
