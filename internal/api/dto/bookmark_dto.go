package dto

type BookmarkCreateReq struct {
	StoreID int64 `json:"storeId" binding:"required"`
}

type BookmarkCreateResp struct {
	BookmarkID int64 `json:"bookmarkId"`
	StoreID    int64 `json:"storeId"`
}

type BookmarkListReq struct {
	Size int `form:"size" binding:"required,min=1,max=50"`
}

type BookmarkResp struct {
	BookmarkID int64            `json:"bookmarkId"`
	Store      StorePreviewResp `json:"store"`
}

type BookmarkListResp struct {
	Bookmarks []BookmarkResp `json:"bookmarks"`
}
