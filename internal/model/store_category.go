package model

import (
	"strings"

	"eatda/internal/apperr"
)

// StoreCategory is persisted as its enum name and shown to clients as its label.
type StoreCategory string

const (
	StoreCategoryKorean      StoreCategory = "KOREAN"
	StoreCategoryChinese     StoreCategory = "CHINESE"
	StoreCategoryJapanese    StoreCategory = "JAPANESE"
	StoreCategoryWestern     StoreCategory = "WESTERN"
	StoreCategoryCafe        StoreCategory = "CAFE"
	StoreCategoryDessert     StoreCategory = "DESSERT"
	StoreCategoryPub         StoreCategory = "PUB"
	StoreCategoryFastFood    StoreCategory = "FAST_FOOD"
	StoreCategoryConvenience StoreCategory = "CONVENIENCE"
	StoreCategoryOther       StoreCategory = "OTHER"
)

// declaration order matters: it is the order clients see
var storeCategories = []struct {
	category StoreCategory
	label    string
}{
	{StoreCategoryKorean, "한식"},
	{StoreCategoryChinese, "중식"},
	{StoreCategoryJapanese, "일식"},
	{StoreCategoryWestern, "양식"},
	{StoreCategoryCafe, "카페"},
	{StoreCategoryDessert, "디저트"},
	{StoreCategoryPub, "술집"},
	{StoreCategoryFastFood, "패스트푸드"},
	{StoreCategoryConvenience, "편의점"},
	{StoreCategoryOther, "기타"},
}

// StoreCategoryFrom resolves a display label. Only an exact label match succeeds.
func StoreCategoryFrom(label string) (StoreCategory, error) {
	if strings.TrimSpace(label) == "" {
		return "", apperr.New(apperr.InvalidStoreCategory)
	}
	for _, c := range storeCategories {
		if c.label == label {
			return c.category, nil
		}
	}
	return "", apperr.New(apperr.InvalidStoreCategory)
}

// IsValidStoreCategory is the non-failing form of StoreCategoryFrom.
func IsValidStoreCategory(label string) bool {
	_, err := StoreCategoryFrom(label)
	return err == nil
}

// CategoryFromSearchLabel scans a provider label such as "음식점 > 한식 > 국밥"
// for the first segment that is exactly a display label.
func CategoryFromSearchLabel(categoryName string) (StoreCategory, bool) {
	for _, segment := range strings.Split(categoryName, ">") {
		if category, err := StoreCategoryFrom(strings.TrimSpace(segment)); err == nil {
			return category, true
		}
	}
	return "", false
}

// DisplayName returns the client-facing label, or "" for an unknown value.
func (c StoreCategory) DisplayName() string {
	for _, sc := range storeCategories {
		if sc.category == c {
			return sc.label
		}
	}
	return ""
}

// Valid reports whether c is one of the declared categories.
func (c StoreCategory) Valid() bool {
	return c.DisplayName() != ""
}
