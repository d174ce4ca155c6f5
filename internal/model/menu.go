package model

import (
	"strings"
	"time"
	"unicode/utf8"

	"eatda/internal/apperr"
)

const (
	menuNameMaxLength = 255
	minPrice          = 1
)

// Menu is an item on a store menu.
type Menu struct {
	BaseModel

	StoreID     int64  `gorm:"index;not null" json:"store_id"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
	ImageURL    string `gorm:"size:512" json:"image_url"`

	DiscountPrice     *int       `json:"discount_price"`
	DiscountStartTime *time.Time `json:"discount_start_time"`
	DiscountEndTime   *time.Time `json:"discount_end_time"`
}

// Discount is an optional reduced price, optionally bounded by a time window.
type Discount struct {
	Price     int        `json:"price"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type MenuParams struct {
	StoreID       int64
	Name          string
	Description   string
	Price         int
	ImageURL      string
	DiscountPrice *int
	DiscountStart *time.Time
	DiscountEnd   *time.Time
}

func NewMenu(p MenuParams) (*Menu, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, apperr.New(apperr.InvalidMenuName)
	}
	if utf8.RuneCountInString(p.Name) > menuNameMaxLength {
		return nil, apperr.New(apperr.InvalidMenuLength)
	}
	if p.Price < minPrice {
		return nil, apperr.New(apperr.InvalidMenuPrice)
	}

	menu := &Menu{
		StoreID:     p.StoreID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
	if p.DiscountPrice != nil {
		discount, err := NewDiscount(p.Price, *p.DiscountPrice, p.DiscountStart, p.DiscountEnd)
		if err != nil {
			return nil, err
		}
		menu.DiscountPrice = &discount.Price
		menu.DiscountStartTime = discount.StartTime
		menu.DiscountEndTime = discount.EndTime
	}
	return menu, nil
}

// Discount returns nil when the menu has no discount.
func (m *Menu) Discount() *Discount {
	if m.DiscountPrice == nil {
		return nil
	}
	return &Discount{Price: *m.DiscountPrice, StartTime: m.DiscountStartTime, EndTime: m.DiscountEndTime}
}

func NewDiscount(originalPrice, discountPrice int, start, end *time.Time) (*Discount, error) {
	if discountPrice < minPrice || discountPrice > originalPrice {
		return nil, apperr.New(apperr.InvalidMenuDiscountPrice)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, apperr.New(apperr.InvalidMenuDiscountTime)
	}
	return &Discount{Price: discountPrice, StartTime: start, EndTime: end}, nil
}

// ActiveAt reports whether the discount applies at t. Open bounds always match.
func (d *Discount) ActiveAt(t time.Time) bool {
	if d == nil {
		return false
	}
	if d.StartTime != nil && t.Before(*d.StartTime) {
		return false
	}
	if d.EndTime != nil && t.After(*d.EndTime) {
		return false
	}
	return true
}
