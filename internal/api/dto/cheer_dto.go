package dto

type CheerRegisterReq struct {
	Query        string `json:"query" binding:"required"`
	StoreKakaoID string `json:"storeKakaoId" binding:"required"`
	Description  string `json:"description"`
	ImageKey     string `json:"imageKey" binding:"required"`
}

type CheerRegisterResp struct {
	CheerID int64 `json:"cheerId"`
	StoreID int64 `json:"storeId"`
}

type CheerListReq struct {
	Size int `form:"size" binding:"required,min=1,max=50"`
}

type CheerResp struct {
	CheerID           int64  `json:"cheerId"`
	StoreID           int64  `json:"storeId"`
	StoreName         string `json:"storeName"`
	StoreDistrict     string `json:"storeDistrict"`
	StoreNeighborhood string `json:"storeNeighborhood"`
	Category          string `json:"category"`
	ImageURL          string `json:"imageUrl"`
	Description       string `json:"description"`
}

type CheerListResp struct {
	Cheers []CheerResp `json:"cheers"`
}
