package service

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eatda/internal/kakao"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== Test fixtures ====================

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Store{}, &model.Cheer{}, &model.Story{}, &model.Member{}, &model.Bookmark{}, &model.Menu{}); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

// fakeMapClient records queries and replays canned results.
type fakeMapClient struct {
	results []kakao.StoreSearchResult
	err     error
	queries []string
}

func (f *fakeMapClient) SearchShops(_ context.Context, query string) ([]kakao.StoreSearchResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results, nil
}

func testStorage() *StorageService {
	return NewStorageServiceWithProvider(NewLocalStorage(&StorageConfig{LocalBaseURL: "https://img.test"}), time.Minute)
}

type testEnv struct {
	db        *gorm.DB
	stores    repository.StoreRepository
	cheers    repository.CheerRepository
	stories   repository.StoryRepository
	members   repository.MemberRepository
	bookmarks repository.BookmarkRepository
	menus     repository.MenuRepository
	mapClient *fakeMapClient
	storage   *StorageService
	filter    *StoreSearchFilter
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupServiceTestDB(t)
	return &testEnv{
		db:        db,
		stores:    repository.NewStoreRepository(db),
		cheers:    repository.NewCheerRepository(db),
		stories:   repository.NewStoryRepository(db),
		members:   repository.NewMemberRepository(db),
		bookmarks: repository.NewBookmarkRepository(db),
		menus:     repository.NewMenuRepository(db),
		mapClient: &fakeMapClient{},
		storage:   testStorage(),
		filter:    NewStoreSearchFilter(""),
	}
}

func (e *testEnv) storeService() *StoreService {
	return NewStoreService(e.stores, e.cheers, e.menus, e.mapClient, e.filter, e.storage)
}

var baseTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func (e *testEnv) createStore(t *testing.T, kakaoID string, category model.StoreCategory, createdAt time.Time) *model.Store {
	t.Helper()
	store, err := model.NewStore(model.StoreParams{
		KakaoID:          kakaoID,
		Name:             "store-" + kakaoID,
		Category:         category,
		LotNumberAddress: "서울 강남구 대치동 896-33",
		Latitude:         37.5,
		Longitude:        127.0,
	})
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	store.CreatedAt = createdAt
	if err := e.db.Create(store).Error; err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func (e *testEnv) createCheer(t *testing.T, storeID int64, key string, createdAt time.Time) {
	t.Helper()
	cheer, err := model.NewCheer(1, storeID, "", key)
	if err != nil {
		t.Fatalf("NewCheer: %v", err)
	}
	cheer.CreatedAt = createdAt
	if err := e.cheers.Create(context.Background(), cheer); err != nil {
		t.Fatalf("create cheer: %v", err)
	}
}

func (e *testEnv) createMember(t *testing.T, socialID, nickname string) *model.Member {
	t.Helper()
	member, err := model.NewMember(socialID, nickname)
	if err != nil {
		t.Fatalf("NewMember: %v", err)
	}
	if err := e.members.Create(context.Background(), member); err != nil {
		t.Fatalf("create member: %v", err)
	}
	return member
}

func searchResult(kakaoID, name, groupCode, categoryName string) kakao.StoreSearchResult {
	return kakao.StoreSearchResult{
		KakaoID:           kakaoID,
		CategoryGroupCode: groupCode,
		CategoryName:      categoryName,
		PlaceName:         name,
		PlaceURL:          "http://place.map.kakao.com/" + kakaoID,
		LotNumberAddress:  "서울 강남구 대치동 896-33",
		RoadAddress:       "서울 강남구 선릉로86길 40-4",
		Latitude:          37.5036,
		Longitude:         127.053,
	}
}
