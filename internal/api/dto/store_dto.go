package dto

// ==================== Store ====================

// StoreListReq GET /api/shops
type StoreListReq struct {
	Size     int    `form:"size" binding:"required,min=1,max=50"`
	Category string `form:"category"`
}

// StoreSearchReq GET /api/shop/search
type StoreSearchReq struct {
	Query string `form:"query" binding:"required"`
}

type StoreResp struct {
	ID               int64   `json:"id"`
	KakaoID          string  `json:"kakaoId"`
	Name             string  `json:"name"`
	District         string  `json:"district"`
	Neighborhood     string  `json:"neighborhood"`
	Category         string  `json:"category"`
	PlaceURL         string  `json:"placeUrl"`
	RoadAddress      string  `json:"roadAddress"`
	LotNumberAddress string  `json:"lotNumberAddress"`
	PhoneNumber      string  `json:"phoneNumber"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// StorePreviewResp carries the newest cheer image, or null when the store has none.
type StorePreviewResp struct {
	ID           int64   `json:"id"`
	ImageURL     *string `json:"imageUrl"`
	Name         string  `json:"name"`
	District     string  `json:"district"`
	Neighborhood string  `json:"neighborhood"`
	Category     string  `json:"category"`
}

type StoreListResp struct {
	Stores []StorePreviewResp `json:"stores"`
}

type ImagesResp struct {
	ImageURLs []string `json:"imageUrls"`
}

type StoreSearchResp struct {
	KakaoID string `json:"kakaoId"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type StoreSearchListResp struct {
	Stores []StoreSearchResp `json:"stores"`
}

// ==================== Menu ====================

type MenuResp struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Price             int     `json:"price"`
	ImageURL          string  `json:"imageUrl"`
	DiscountPrice     *int    `json:"discountPrice"`
	DiscountStartTime *string `json:"discountStartTime"`
	DiscountEndTime   *string `json:"discountEndTime"`
	DiscountActive    bool    `json:"discountActive"`
}

type MenuListResp struct {
	Menus []MenuResp `json:"menus"`
}
