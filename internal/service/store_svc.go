package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/kakao"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// MapClient searches places on the external map provider.
type MapClient interface {
	SearchShops(ctx context.Context, query string) ([]kakao.StoreSearchResult, error)
}

// ==================== StoreService ====================

type StoreService struct {
	storeRepo repository.StoreRepository
	cheerRepo repository.CheerRepository
	menuRepo  repository.MenuRepository
	mapClient MapClient
	filter    *StoreSearchFilter
	storage   ImageStorage
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	cheerRepo repository.CheerRepository,
	menuRepo repository.MenuRepository,
	mapClient MapClient,
	filter *StoreSearchFilter,
	storage ImageStorage,
) *StoreService {
	return &StoreService{
		storeRepo: storeRepo,
		cheerRepo: cheerRepo,
		menuRepo:  menuRepo,
		mapClient: mapClient,
		filter:    filter,
		storage:   storage,
	}
}

// GetStore fails with STORE_NOT_FOUND for unknown ids.
func (s *StoreService) GetStore(ctx context.Context, storeID int64) (*dto.StoreResp, error) {
	store, err := s.getStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toStoreResp(store), nil
}

// GetStores lists the newest stores, optionally restricted to one category label.
// A blank category means no filter.
func (s *StoreService) GetStores(ctx context.Context, size int, category string) (*dto.StoreListResp, error) {
	var (
		stores []model.Store
		err    error
	)
	if strings.TrimSpace(category) == "" {
		stores, err = s.storeRepo.FindRecent(ctx, size)
	} else {
		c, cerr := model.StoreCategoryFrom(category)
		if cerr != nil {
			return nil, cerr
		}
		stores, err = s.storeRepo.FindRecentByCategory(ctx, c, size)
	}
	if err != nil {
		return nil, fmt.Errorf("query stores: %w", err)
	}

	previews, err := buildStorePreviews(ctx, s.cheerRepo, s.storage, stores)
	if err != nil {
		return nil, err
	}
	return &dto.StoreListResp{Stores: previews}, nil
}

// GetStoreImages presigns every cheer image of the store, newest first.
func (s *StoreService) GetStoreImages(ctx context.Context, storeID int64) (*dto.ImagesResp, error) {
	if _, err := s.getStore(ctx, storeID); err != nil {
		return nil, err
	}

	keys, err := s.cheerRepo.FindAllImageKeys(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("query store images: %w", err)
	}
	urls, err := presignAll(ctx, s.storage, keys)
	if err != nil {
		return nil, err
	}
	return &dto.ImagesResp{ImageURLs: urls}, nil
}

// SearchStores passes query to the map provider untouched. Provider errors propagate as-is.
func (s *StoreService) SearchStores(ctx context.Context, query string) (*dto.StoreSearchListResp, error) {
	results, err := s.mapClient.SearchShops(ctx, query)
	if err != nil {
		return nil, err
	}

	filtered := s.filter.Filter(results)
	resp := &dto.StoreSearchListResp{Stores: make([]dto.StoreSearchResp, 0, len(filtered))}
	for _, r := range filtered {
		resp.Stores = append(resp.Stores, dto.StoreSearchResp{
			KakaoID: r.KakaoID,
			Name:    r.PlaceName,
			Address: r.LotNumberAddress,
		})
	}
	return resp, nil
}

func (s *StoreService) GetStoreMenus(ctx context.Context, storeID int64) (*dto.MenuListResp, error) {
	if _, err := s.getStore(ctx, storeID); err != nil {
		return nil, err
	}

	menus, err := s.menuRepo.FindByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("query menus: %w", err)
	}

	now := time.Now()
	resp := &dto.MenuListResp{Menus: make([]dto.MenuResp, 0, len(menus))}
	for i := range menus {
		resp.Menus = append(resp.Menus, toMenuResp(&menus[i], now))
	}
	return resp, nil
}

// RegisterFromSearch looks the place up on the map provider and returns its store,
// creating the row on first reference.
func (s *StoreService) RegisterFromSearch(ctx context.Context, query, kakaoID string) (*model.Store, error) {
	if existing, err := s.storeRepo.GetByKakaoID(ctx, kakaoID); err != nil {
		return nil, fmt.Errorf("query store by kakao id: %w", err)
	} else if existing != nil {
		return existing, nil
	}

	result, err := searchPlace(ctx, s.mapClient, s.filter, query, kakaoID)
	if err != nil {
		return nil, err
	}
	store, err := newStoreFromSearchResult(*result)
	if err != nil {
		return nil, err
	}
	saved, err := s.storeRepo.FindOrCreate(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("save store: %w", err)
	}
	return saved, nil
}

func (s *StoreService) getStore(ctx context.Context, storeID int64) (*model.Store, error) {
	store, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("query store: %w", err)
	}
	if store == nil {
		return nil, apperr.New(apperr.StoreNotFound)
	}
	return store, nil
}

// ==================== Helpers ====================

// searchPlace fails with STORE_NOT_FOUND when the filtered results lack kakaoID.
func searchPlace(ctx context.Context, mapClient MapClient, filter *StoreSearchFilter, query, kakaoID string) (*kakao.StoreSearchResult, error) {
	results, err := mapClient.SearchShops(ctx, query)
	if err != nil {
		return nil, err
	}
	found := findSearchResult(filter.Filter(results), kakaoID)
	if found == nil {
		return nil, apperr.New(apperr.StoreNotFound)
	}
	return found, nil
}

// buildStorePreviews pairs each store with its newest cheer image using one batched query.
func buildStorePreviews(ctx context.Context, cheerRepo repository.CheerRepository, storage ImageStorage, stores []model.Store) ([]dto.StorePreviewResp, error) {
	ids := make([]int64, 0, len(stores))
	for _, st := range stores {
		ids = append(ids, st.ID)
	}
	keys, err := cheerRepo.FindRecentImageKeys(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("query preview images: %w", err)
	}

	previews := make([]dto.StorePreviewResp, 0, len(stores))
	for _, st := range stores {
		preview := dto.StorePreviewResp{
			ID:           st.ID,
			Name:         st.Name,
			District:     st.Address.District,
			Neighborhood: st.Address.Neighborhood,
			Category:     st.Category.DisplayName(),
		}
		if key, ok := keys[st.ID]; ok {
			url, err := storage.PresignedURL(ctx, key)
			if err != nil {
				return nil, err
			}
			preview.ImageURL = &url
		}
		previews = append(previews, preview)
	}
	return previews, nil
}

func toStoreResp(store *model.Store) *dto.StoreResp {
	return &dto.StoreResp{
		ID:               store.ID,
		KakaoID:          store.KakaoID,
		Name:             store.Name,
		District:         store.Address.District,
		Neighborhood:     store.Address.Neighborhood,
		Category:         store.Category.DisplayName(),
		PlaceURL:         store.PlaceURL,
		RoadAddress:      store.Address.RoadAddress,
		LotNumberAddress: store.Address.LotNumberAddress,
		PhoneNumber:      store.PhoneNumber,
		Latitude:         store.Coordinates.Latitude,
		Longitude:        store.Coordinates.Longitude,
	}
}

func toMenuResp(menu *model.Menu, now time.Time) dto.MenuResp {
	resp := dto.MenuResp{
		ID:          menu.ID,
		Name:        menu.Name,
		Description: menu.Description,
		Price:       menu.Price,
		ImageURL:    menu.ImageURL,
	}
	if d := menu.Discount(); d != nil {
		price := d.Price
		resp.DiscountPrice = &price
		resp.DiscountStartTime = formatTime(d.StartTime)
		resp.DiscountEndTime = formatTime(d.EndTime)
		resp.DiscountActive = d.ActiveAt(now)
	}
	return resp
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
