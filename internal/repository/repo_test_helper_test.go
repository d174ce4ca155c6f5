package repository

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"eatda/internal/model"
)

func setupRepoTestDB(t *testing.T) *gorm.DB {
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
	// every pooled connection to :memory: would get its own empty database
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&model.Store{}, &model.Cheer{}, &model.Story{}, &model.Member{}, &model.Bookmark{}, &model.Menu{}, &model.BackfillAttempt{})
	if err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}

var baseTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(kakaoID string, category model.StoreCategory, createdAt time.Time) *model.Store {
	store, _ := model.NewStore(model.StoreParams{
		KakaoID:          kakaoID,
		Name:             "store-" + kakaoID,
		Category:         category,
		LotNumberAddress: "서울 강남구 대치동 896-33",
		Latitude:         37.5,
		Longitude:        127.0,
	})
	store.CreatedAt = createdAt
	return store
}
