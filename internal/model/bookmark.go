package model

import "eatda/internal/apperr"

// Bookmark is a member's saved store. A member bookmarks a store at most once.
type Bookmark struct {
	BaseModel

	MemberID int64 `gorm:"uniqueIndex:idx_bookmark_member_store;not null" json:"member_id"`
	StoreID  int64 `gorm:"uniqueIndex:idx_bookmark_member_store;index;not null" json:"store_id"`
}

func NewBookmark(memberID, storeID int64) (*Bookmark, error) {
	if memberID <= 0 {
		return nil, apperr.New(apperr.BookmarkMemberRequired)
	}
	if storeID <= 0 {
		return nil, apperr.New(apperr.BookmarkStoreRequired)
	}
	return &Bookmark{MemberID: memberID, StoreID: storeID}, nil
}
