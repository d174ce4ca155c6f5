package service

import (
	"context"
	"errors"
	"fmt"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== BookmarkService ====================

type BookmarkService struct {
	bookmarkRepo repository.BookmarkRepository
	storeRepo    repository.StoreRepository
	memberRepo   repository.MemberRepository
	cheerRepo    repository.CheerRepository
	storage      ImageStorage
}

func NewBookmarkService(
	bookmarkRepo repository.BookmarkRepository,
	storeRepo repository.StoreRepository,
	memberRepo repository.MemberRepository,
	cheerRepo repository.CheerRepository,
	storage ImageStorage,
) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		storeRepo:    storeRepo,
		memberRepo:   memberRepo,
		cheerRepo:    cheerRepo,
		storage:      storage,
	}
}

func (s *BookmarkService) Create(ctx context.Context, memberID int64, req dto.BookmarkCreateReq) (*dto.BookmarkCreateResp, error) {
	bookmark, err := model.NewBookmark(memberID, req.StoreID)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if member == nil {
		return nil, apperr.New(apperr.MemberNotFound)
	}
	store, err := s.storeRepo.GetByID(ctx, req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	if store == nil {
		return nil, apperr.New(apperr.StoreNotFound)
	}

	exists, err := s.bookmarkRepo.ExistsByMemberAndStore(ctx, memberID, req.StoreID)
	if err != nil {
		return nil, fmt.Errorf("check bookmark: %w", err)
	}
	if exists {
		return nil, apperr.New(apperr.BookmarkAlreadyExists)
	}

	// the unique index still decides when two requests pass the check together
	if err := s.bookmarkRepo.Create(ctx, bookmark); err != nil {
		if errors.Is(err, repository.ErrDuplicateBookmark) {
			return nil, apperr.New(apperr.BookmarkAlreadyExists)
		}
		return nil, fmt.Errorf("save bookmark: %w", err)
	}
	return &dto.BookmarkCreateResp{BookmarkID: bookmark.ID, StoreID: bookmark.StoreID}, nil
}

// Delete only removes the member's own bookmark. Anything else is BOOKMARK_NOT_FOUND.
func (s *BookmarkService) Delete(ctx context.Context, memberID, bookmarkID int64) error {
	bookmark, err := s.bookmarkRepo.GetByID(ctx, bookmarkID)
	if err != nil {
		return fmt.Errorf("query bookmark: %w", err)
	}
	if bookmark == nil || bookmark.MemberID != memberID {
		return apperr.New(apperr.BookmarkNotFound)
	}
	if err := s.bookmarkRepo.Delete(ctx, bookmarkID); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}

func (s *BookmarkService) List(ctx context.Context, memberID int64, size int) (*dto.BookmarkListResp, error) {
	bookmarks, err := s.bookmarkRepo.FindRecentByMember(ctx, memberID, size)
	if err != nil {
		return nil, fmt.Errorf("query bookmarks: %w", err)
	}

	ids := make([]int64, 0, len(bookmarks))
	for _, b := range bookmarks {
		ids = append(ids, b.StoreID)
	}
	stores, err := s.storeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query bookmark stores: %w", err)
	}
	previews, err := buildStorePreviews(ctx, s.cheerRepo, s.storage, stores)
	if err != nil {
		return nil, err
	}
	byStore := make(map[int64]dto.StorePreviewResp, len(previews))
	for _, p := range previews {
		byStore[p.ID] = p
	}

	resp := &dto.BookmarkListResp{Bookmarks: make([]dto.BookmarkResp, 0, len(bookmarks))}
	for _, b := range bookmarks {
		preview, ok := byStore[b.StoreID]
		if !ok {
			continue
		}
		resp.Bookmarks = append(resp.Bookmarks, dto.BookmarkResp{BookmarkID: b.ID, Store: preview})
	}
	return resp, nil
}
