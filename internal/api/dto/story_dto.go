package dto

type StoryRegisterReq struct {
	Query        string `json:"query" binding:"required"`
	StoreKakaoID string `json:"storeKakaoId" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ImageKey     string `json:"imageKey" binding:"required"`
}

type StoryRegisterResp struct {
	StoryID int64 `json:"storyId"`
}

type StoryListReq struct {
	Size int `form:"size" binding:"required,min=1,max=50"`
}

type StoryPreviewResp struct {
	StoryID  int64  `json:"storyId"`
	ImageURL string `json:"imageUrl"`
}

type StoryListResp struct {
	Stories []StoryPreviewResp `json:"stories"`
}

// StoryResp.StoreID is null while no store row exists for the story's place.
type StoryResp struct {
	StoreID           *int64 `json:"storeId"`
	StoreKakaoID      string `json:"storeKakaoId"`
	Category          string `json:"category"`
	StoreName         string `json:"storeName"`
	StoreDistrict     string `json:"storeDistrict"`
	StoreNeighborhood string `json:"storeNeighborhood"`
	Description       string `json:"description"`
	ImageURL          string `json:"imageUrl"`
	MemberID          int64  `json:"memberId"`
	MemberNickname    string `json:"memberNickname"`
}

type StoryDetailResp struct {
	StoryID        int64  `json:"storyId"`
	ImageURL       string `json:"imageUrl"`
	Description    string `json:"description"`
	MemberNickname string `json:"memberNickname"`
}

type StoryDetailListResp struct {
	Stories []StoryDetailResp `json:"stories"`
}
