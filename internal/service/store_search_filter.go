package service

import (
	"strings"

	"eatda/internal/kakao"
	"eatda/internal/model"
)

// food-place category groups of the map provider
var foodCategoryGroups = map[string]bool{
	"FD6": true, // 음식점
	"CE7": true, // 카페
}

// StoreSearchFilter narrows raw map search results to places the service can list.
// Filtering never fails and keeps the provider's order.
type StoreSearchFilter struct {
	regionPrefix string
}

// NewStoreSearchFilter restricts results to lot-number addresses starting with
// regionPrefix. An empty prefix disables the region check.
func NewStoreSearchFilter(regionPrefix string) *StoreSearchFilter {
	return &StoreSearchFilter{regionPrefix: strings.TrimSpace(regionPrefix)}
}

func (f *StoreSearchFilter) Filter(results []kakao.StoreSearchResult) []kakao.StoreSearchResult {
	filtered := make([]kakao.StoreSearchResult, 0, len(results))
	seen := make(map[string]struct{}, len(results))

	for _, r := range results {
		if strings.TrimSpace(r.KakaoID) == "" || strings.TrimSpace(r.PlaceName) == "" {
			continue
		}
		if !foodCategoryGroups[r.CategoryGroupCode] {
			continue
		}
		if f.regionPrefix != "" && !strings.HasPrefix(r.LotNumberAddress, f.regionPrefix) {
			continue
		}
		if _, dup := seen[r.KakaoID]; dup {
			continue
		}
		seen[r.KakaoID] = struct{}{}
		filtered = append(filtered, r)
	}
	return filtered
}

// SearchResultCategory maps a provider label onto the taxonomy, OTHER when nothing matches.
func SearchResultCategory(r kakao.StoreSearchResult) model.StoreCategory {
	if category, ok := model.CategoryFromSearchLabel(r.CategoryName); ok {
		return category
	}
	if r.CategoryGroupCode == "CE7" {
		return model.StoreCategoryCafe
	}
	return model.StoreCategoryOther
}

// findSearchResult returns nil when no filtered result has kakaoID.
func findSearchResult(results []kakao.StoreSearchResult, kakaoID string) *kakao.StoreSearchResult {
	for i := range results {
		if results[i].KakaoID == kakaoID {
			return &results[i]
		}
	}
	return nil
}

func newStoreFromSearchResult(r kakao.StoreSearchResult) (*model.Store, error) {
	return model.NewStore(model.StoreParams{
		KakaoID:          r.KakaoID,
		Name:             r.PlaceName,
		Category:         SearchResultCategory(r),
		PhoneNumber:      r.PhoneNumber,
		PlaceURL:         r.PlaceURL,
		RoadAddress:      r.RoadAddress,
		LotNumberAddress: r.LotNumberAddress,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
	})
}
