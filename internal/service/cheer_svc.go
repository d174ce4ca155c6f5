package service

import (
	"context"
	"fmt"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== CheerService ====================

type CheerService struct {
	cheerRepo  repository.CheerRepository
	storeRepo  repository.StoreRepository
	memberRepo repository.MemberRepository
	stores     *StoreService
	storage    ImageStorage
}

func NewCheerService(
	cheerRepo repository.CheerRepository,
	storeRepo repository.StoreRepository,
	memberRepo repository.MemberRepository,
	stores *StoreService,
	storage ImageStorage,
) *CheerService {
	return &CheerService{
		cheerRepo:  cheerRepo,
		storeRepo:  storeRepo,
		memberRepo: memberRepo,
		stores:     stores,
		storage:    storage,
	}
}

// RegisterCheer attaches an image to the searched place, creating the store on first reference.
func (s *CheerService) RegisterCheer(ctx context.Context, req dto.CheerRegisterReq, memberID int64) (*dto.CheerRegisterResp, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if member == nil {
		return nil, apperr.New(apperr.MemberNotFound)
	}

	store, err := s.stores.RegisterFromSearch(ctx, req.Query, req.StoreKakaoID)
	if err != nil {
		return nil, err
	}

	cheer, err := model.NewCheer(member.ID, store.ID, req.Description, req.ImageKey)
	if err != nil {
		return nil, err
	}
	if err := s.cheerRepo.Create(ctx, cheer); err != nil {
		return nil, fmt.Errorf("save cheer: %w", err)
	}
	return &dto.CheerRegisterResp{CheerID: cheer.ID, StoreID: store.ID}, nil
}

func (s *CheerService) GetCheers(ctx context.Context, size int) (*dto.CheerListResp, error) {
	cheers, err := s.cheerRepo.FindRecent(ctx, size)
	if err != nil {
		return nil, fmt.Errorf("query cheers: %w", err)
	}

	ids := make([]int64, 0, len(cheers))
	for _, c := range cheers {
		ids = append(ids, c.StoreID)
	}
	stores, err := s.storeRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query cheer stores: %w", err)
	}
	byID := make(map[int64]*model.Store, len(stores))
	for i := range stores {
		byID[stores[i].ID] = &stores[i]
	}

	resp := &dto.CheerListResp{Cheers: make([]dto.CheerResp, 0, len(cheers))}
	for _, c := range cheers {
		store, ok := byID[c.StoreID]
		if !ok {
			continue
		}
		url, err := s.storage.PresignedURL(ctx, c.ImageKey)
		if err != nil {
			return nil, err
		}
		resp.Cheers = append(resp.Cheers, dto.CheerResp{
			CheerID:           c.ID,
			StoreID:           store.ID,
			StoreName:         store.Name,
			StoreDistrict:     store.Address.District,
			StoreNeighborhood: store.Address.Neighborhood,
			Category:          store.Category.DisplayName(),
			ImageURL:          url,
			Description:       c.Description,
		})
	}
	return resp, nil
}
