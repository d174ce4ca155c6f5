package service

import (
	"context"
	"fmt"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== StoryService ====================

type StoryService struct {
	storyRepo  repository.StoryRepository
	storeRepo  repository.StoreRepository
	memberRepo repository.MemberRepository
	mapClient  MapClient
	filter     *StoreSearchFilter
	storage    ImageStorage
}

func NewStoryService(
	storyRepo repository.StoryRepository,
	storeRepo repository.StoreRepository,
	memberRepo repository.MemberRepository,
	mapClient MapClient,
	filter *StoreSearchFilter,
	storage ImageStorage,
) *StoryService {
	return &StoryService{
		storyRepo:  storyRepo,
		storeRepo:  storeRepo,
		memberRepo: memberRepo,
		mapClient:  mapClient,
		filter:     filter,
		storage:    storage,
	}
}

// RegisterStory snapshots the place found by searching req.Query. The place must be
// among the filtered results, otherwise STORE_NOT_FOUND.
func (s *StoryService) RegisterStory(ctx context.Context, req dto.StoryRegisterReq, memberID int64) (*dto.StoryRegisterResp, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if member == nil {
		return nil, apperr.New(apperr.MemberNotFound)
	}

	place, err := searchPlace(ctx, s.mapClient, s.filter, req.Query, req.StoreKakaoID)
	if err != nil {
		return nil, err
	}

	story, err := model.NewStory(model.StoryParams{
		MemberID:              member.ID,
		StoreKakaoID:          place.KakaoID,
		StoreName:             place.PlaceName,
		StoreRoadAddress:      place.RoadAddress,
		StoreLotNumberAddress: place.LotNumberAddress,
		StoreCategory:         SearchResultCategory(*place),
		Description:           req.Description,
		ImageKey:              req.ImageKey,
	})
	if err != nil {
		return nil, err
	}
	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, fmt.Errorf("save story: %w", err)
	}
	return &dto.StoryRegisterResp{StoryID: story.ID}, nil
}

func (s *StoryService) GetPagedStoryPreviews(ctx context.Context, size int) (*dto.StoryListResp, error) {
	stories, err := s.storyRepo.FindRecent(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("query stories: %w", err)
	}

	resp := &dto.StoryListResp{Stories: make([]dto.StoryPreviewResp, 0, len(stories))}
	for _, story := range stories {
		url, err := s.storage.PresignedURL(ctx, story.ImageKey)
		if err != nil {
			return nil, err
		}
		resp.Stories = append(resp.Stories, dto.StoryPreviewResp{StoryID: story.ID, ImageURL: url})
	}
	return resp, nil
}

func (s *StoryService) GetStory(ctx context.Context, storyID int64) (*dto.StoryResp, error) {
	story, err := s.storyRepo.GetByID(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("query story: %w", err)
	}
	if story == nil {
		return nil, apperr.New(apperr.StoryNotFound)
	}

	store, err := s.storeRepo.GetByKakaoID(ctx, story.StoreKakaoID)
	if err != nil {
		return nil, fmt.Errorf("query story store: %w", err)
	}
	member, err := s.memberRepo.GetByID(ctx, story.MemberID)
	if err != nil {
		return nil, fmt.Errorf("query story member: %w", err)
	}
	url, err := s.storage.PresignedURL(ctx, story.ImageKey)
	if err != nil {
		return nil, err
	}

	resp := &dto.StoryResp{
		StoreKakaoID:      story.StoreKakaoID,
		Category:          story.StoreCategory.DisplayName(),
		StoreName:         story.StoreName,
		StoreDistrict:     story.AddressDistrict(),
		StoreNeighborhood: story.AddressNeighborhood(),
		Description:       story.Description,
		ImageURL:          url,
		MemberID:          story.MemberID,
	}
	if store != nil {
		resp.StoreID = &store.ID
	}
	if member != nil {
		resp.MemberNickname = member.Nickname
	}
	return resp, nil
}

// GetPagedStoryDetails lists stories of one place. Unknown ids yield an empty list.
func (s *StoryService) GetPagedStoryDetails(ctx context.Context, kakaoID string, size int) (*dto.StoryDetailListResp, error) {
	stories, err := s.storyRepo.FindRecentByKakaoID(ctx, kakaoID, size)
	if err != nil {
		return nil, fmt.Errorf("query stories by place: %w", err)
	}

	nicknames, err := s.nicknames(ctx, stories)
	if err != nil {
		return nil, err
	}

	resp := &dto.StoryDetailListResp{Stories: make([]dto.StoryDetailResp, 0, len(stories))}
	for _, story := range stories {
		url, err := s.storage.PresignedURL(ctx, story.ImageKey)
		if err != nil {
			return nil, err
		}
		resp.Stories = append(resp.Stories, dto.StoryDetailResp{
			StoryID:        story.ID,
			ImageURL:       url,
			Description:    story.Description,
			MemberNickname: nicknames[story.MemberID],
		})
	}
	return resp, nil
}

func (s *StoryService) nicknames(ctx context.Context, stories []model.Story) (map[int64]string, error) {
	ids := make([]int64, 0, len(stories))
	for _, story := range stories {
		ids = append(ids, story.MemberID)
	}
	members, err := s.memberRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query story members: %w", err)
	}
	result := make(map[int64]string, len(members))
	for _, m := range members {
		result[m.ID] = m.Nickname
	}
	return result, nil
}
