package task

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== Test fixtures ====================

func setupTaskTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Store{}, &model.Story{}, &model.BackfillAttempt{}))
	return db
}

// fakeRegistrar creates stores directly, failing for configured kakao ids.
type fakeRegistrar struct {
	stores   repository.StoreRepository
	missing  map[string]bool
	broken   map[string]bool
	mu       sync.Mutex
	requests map[string]string
}

func (f *fakeRegistrar) RegisterFromSearch(ctx context.Context, query, kakaoID string) (*model.Store, error) {
	f.mu.Lock()
	f.requests[kakaoID] = query
	f.mu.Unlock()

	if f.missing[kakaoID] {
		return nil, apperr.New(apperr.StoreNotFound)
	}
	if f.broken[kakaoID] {
		return nil, apperr.Wrap(apperr.MapServerError, errors.New("timeout"))
	}
	store, err := model.NewStore(model.StoreParams{KakaoID: kakaoID, Name: query, Category: model.StoreCategoryOther})
	if err != nil {
		return nil, err
	}
	return f.stores.FindOrCreate(ctx, store)
}

func createStory(t *testing.T, repo repository.StoryRepository, kakaoID, name string) {
	t.Helper()
	createStoryAt(t, repo, kakaoID, name, time.Time{})
}

func createStoryAt(t *testing.T, repo repository.StoryRepository, kakaoID, name string, at time.Time) {
	t.Helper()
	story, err := model.NewStory(model.StoryParams{
		MemberID:     1,
		StoreKakaoID: kakaoID,
		StoreName:    name,
		Description:  "good",
		ImageKey:     "story.jpg",
	})
	require.NoError(t, err)
	story.CreatedAt = at
	require.NoError(t, repo.Create(context.Background(), story))
}

func newTestTask(db *gorm.DB, registrar StoreRegistrar, cfg StoreBackfillConfig, now *time.Time) *StoreBackfillTask {
	task := NewStoreBackfillTask(repository.NewStoryRepository(db), repository.NewBackfillAttemptRepository(db), registrar, cfg)
	task.now = func() time.Time { return *now }
	return task
}

var taskBaseTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

// ==================== Tests ====================

func TestStoreBackfillTask_RunOnce(t *testing.T) {
	db := setupTaskTestDB(t)
	stories := repository.NewStoryRepository(db)
	stores := repository.NewStoreRepository(db)
	ctx := context.Background()

	createStory(t, stories, "1", "순대국집")
	createStory(t, stories, "1", "순대국집")
	createStory(t, stories, "2", "사라진 가게")
	createStory(t, stories, "3", "타임아웃")
	createStory(t, stories, "4", "이미 있음")

	existing, err := model.NewStore(model.StoreParams{KakaoID: "4", Name: "이미 있음", Category: model.StoreCategoryKorean})
	require.NoError(t, err)
	require.NoError(t, db.Create(existing).Error)

	registrar := &fakeRegistrar{
		stores:   stores,
		missing:  map[string]bool{"2": true},
		broken:   map[string]bool{"3": true},
		requests: map[string]string{},
	}
	now := taskBaseTime
	task := newTestTask(db, registrar, StoreBackfillConfig{BatchSize: 10, Concurrency: 2, RetryBackoff: time.Hour}, &now)

	result, err := task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{Created: 1, NotFound: 1, Failed: 1}, result)
	assert.Equal(t, map[string]string{"1": "순대국집", "2": "사라진 가게", "3": "타임아웃"}, registrar.requests)

	store, err := stores.GetByKakaoID(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, store)

	// created places drop out, failed ones wait for their back-off
	registrar.requests = map[string]string{}
	result, err = task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, result)
	assert.Empty(t, registrar.requests)

	now = now.Add(time.Hour)
	result, err = task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{NotFound: 1, Failed: 1}, result)
	assert.NotContains(t, registrar.requests, "1")
}

func TestStoreBackfillTask_UnresolvablePlacesDoNotBlockNewer(t *testing.T) {
	db := setupTaskTestDB(t)
	stories := repository.NewStoryRepository(db)
	stores := repository.NewStoreRepository(db)
	attempts := repository.NewBackfillAttemptRepository(db)
	ctx := context.Background()

	createStoryAt(t, stories, "gone-1", "폐업한 가게", taskBaseTime)
	createStoryAt(t, stories, "gone-2", "이전한 가게", taskBaseTime.Add(time.Minute))
	createStoryAt(t, stories, "live", "새 가게", taskBaseTime.Add(2*time.Minute))

	registrar := &fakeRegistrar{
		stores:   stores,
		missing:  map[string]bool{"gone-1": true, "gone-2": true},
		requests: map[string]string{},
	}
	now := taskBaseTime.Add(time.Hour)
	task := newTestTask(db, registrar, StoreBackfillConfig{BatchSize: 2, Concurrency: 1, RetryBackoff: time.Hour}, &now)

	result, err := task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{NotFound: 2}, result)

	result, err = task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{Created: 1}, result)
	assert.Contains(t, registrar.requests, "live")

	live, err := stores.GetByKakaoID(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, live)

	// the back-off doubles with every failure
	now = now.Add(time.Hour)
	result, err = task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{NotFound: 2}, result)

	attempt, err := attempts.GetByKakaoID(ctx, "gone-1")
	require.NoError(t, err)
	require.NotNil(t, attempt)
	assert.Equal(t, 2, attempt.Attempts)
	assert.True(t, attempt.NextAttemptAt.Equal(now.Add(2*time.Hour)))

	now = now.Add(time.Hour)
	result, err = task.RunOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, result)
}

func TestStoreBackfillTask_RetryBackoff(t *testing.T) {
	task := NewStoreBackfillTask(nil, nil, nil, StoreBackfillConfig{RetryBackoff: time.Hour, MaxRetryBackoff: 5 * time.Hour})

	tests := []struct {
		attempts int
		want     time.Duration
	}{
		{1, time.Hour},
		{2, 2 * time.Hour},
		{3, 4 * time.Hour},
		{4, 5 * time.Hour},
		{30, 5 * time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, task.retryBackoff(tt.attempts), "attempts=%d", tt.attempts)
	}
}

func TestStoreBackfillTask_EmptyAndDefaults(t *testing.T) {
	db := setupTaskTestDB(t)
	now := taskBaseTime
	task := newTestTask(db, &fakeRegistrar{requests: map[string]string{}}, StoreBackfillConfig{}, &now)

	assert.Equal(t, DefaultStoreBackfillConfig(), task.cfg)

	result, err := task.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BackfillResult{}, result)
}

func TestStoreBackfillTask_StartRejectsBadCron(t *testing.T) {
	db := setupTaskTestDB(t)
	now := taskBaseTime
	task := newTestTask(db, &fakeRegistrar{requests: map[string]string{}},
		StoreBackfillConfig{Cron: "every now and then", Timeout: time.Second}, &now)

	assert.Error(t, task.Start())
}
