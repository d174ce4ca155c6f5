package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eatda/internal/api/resp"
	"eatda/internal/kakao"
	"eatda/internal/middleware"
	"eatda/internal/model"
	"eatda/internal/repository"
	"eatda/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       "controller-test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 2 * time.Hour,
		Issuer:          "eatda-test",
	})
}

// ==================== Test fixtures ====================

type stubMapClient struct {
	results []kakao.StoreSearchResult
	err     error
}

func (s *stubMapClient) SearchShops(context.Context, string) ([]kakao.StoreSearchResult, error) {
	return s.results, s.err
}

type ctlEnv struct {
	db        *gorm.DB
	stores    repository.StoreRepository
	cheers    repository.CheerRepository
	members   repository.MemberRepository
	stories   repository.StoryRepository
	bookmarks repository.BookmarkRepository
	menus     repository.MenuRepository
	mapClient *stubMapClient

	storeSvc    *service.StoreService
	storySvc    *service.StoryService
	cheerSvc    *service.CheerService
	memberSvc   *service.MemberService
	bookmarkSvc *service.BookmarkService
}

func setupCtlEnv(t *testing.T) *ctlEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Store{}, &model.Cheer{}, &model.Story{}, &model.Member{}, &model.Bookmark{}, &model.Menu{}))

	env := &ctlEnv{
		db:        db,
		stores:    repository.NewStoreRepository(db),
		cheers:    repository.NewCheerRepository(db),
		members:   repository.NewMemberRepository(db),
		stories:   repository.NewStoryRepository(db),
		bookmarks: repository.NewBookmarkRepository(db),
		menus:     repository.NewMenuRepository(db),
		mapClient: &stubMapClient{},
	}
	storage := service.NewStorageServiceWithProvider(
		service.NewLocalStorage(&service.StorageConfig{LocalBaseURL: "https://img.test"}), time.Minute)
	filter := service.NewStoreSearchFilter("")

	env.storeSvc = service.NewStoreService(env.stores, env.cheers, env.menus, env.mapClient, filter, storage)
	env.storySvc = service.NewStoryService(env.stories, env.stores, env.members, env.mapClient, filter, storage)
	env.cheerSvc = service.NewCheerService(env.cheers, env.stores, env.members, env.storeSvc, storage)
	env.memberSvc = service.NewMemberService(env.members)
	env.bookmarkSvc = service.NewBookmarkService(env.bookmarks, env.stores, env.members, env.cheers, storage)
	return env
}

func (e *ctlEnv) createStore(t *testing.T, kakaoID string, category model.StoreCategory, createdAt time.Time) *model.Store {
	t.Helper()
	store, err := model.NewStore(model.StoreParams{
		KakaoID:          kakaoID,
		Name:             "store-" + kakaoID,
		Category:         category,
		LotNumberAddress: "서울 성동구 성수동1가 685-20",
		Latitude:         37.54,
		Longitude:        127.05,
	})
	require.NoError(t, err)
	store.CreatedAt = createdAt
	require.NoError(t, e.db.Create(store).Error)
	return store
}

func (e *ctlEnv) createCheer(t *testing.T, storeID int64, key string, createdAt time.Time) {
	t.Helper()
	cheer, err := model.NewCheer(1, storeID, "", key)
	require.NoError(t, err)
	cheer.CreatedAt = createdAt
	require.NoError(t, e.cheers.Create(context.Background(), cheer))
}

// login creates a member and returns its Authorization header.
func (e *ctlEnv) login(t *testing.T, socialID, nickname string) (int64, map[string]string) {
	t.Helper()
	member, _, err := e.memberSvc.Register(context.Background(), socialID, nickname)
	require.NoError(t, err)
	token, err := middleware.GenerateAccessToken(member.ID)
	require.NoError(t, err)
	return member.ID, map[string]string{"Authorization": "Bearer " + token}
}

var baseTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// ==================== HTTP helpers ====================

func performRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	return decode[resp.ErrorResp](t, w).Code
}

func path(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
