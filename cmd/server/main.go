package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eatda/internal/config"
	"eatda/internal/controller"
	"eatda/internal/kakao"
	"eatda/internal/middleware"
	"eatda/internal/model"
	"eatda/internal/repository"
	"eatda/internal/router"
	"eatda/internal/service"
	"eatda/internal/task"
	"eatda/pkg/database"
	"eatda/pkg/logger"
)

// @title eatda API
// @version 1.0
// @description Food discovery backend: stores, stories, cheers, bookmarks and members.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer {access token}
func main() {
	cfg := config.Load()

	zapLogger, err := logger.Init(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.Server.Mode)
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTTL,
		Issuer:          cfg.JWT.Issuer,
	})

	db, err := initDatabase(cfg)
	if err != nil {
		zap.L().Fatal("init database", zap.Error(err))
	}

	deps, err := initDependencies(cfg, db)
	if err != nil {
		zap.L().Fatal("init dependencies", zap.Error(err))
	}

	stopTasks := initTasks(cfg, deps)
	defer stopTasks()

	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	deps.SearchLimiter.StartCleanup(10*time.Minute, stopCleanup)
	go purgeURLCache(deps.Services.Storage, time.Minute, stopCleanup)

	r := router.New(deps.Controllers, router.Options{
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		SearchLimiter:      deps.SearchLimiter,
		HealthCheck: func(ctx context.Context) error {
			return database.Ping(ctx, db)
		},
	})

	startServer(cfg.Server.Port, r)
}

// ==================== Dependency container ====================

type Dependencies struct {
	DB            *gorm.DB
	Repos         *Repositories
	Services      *Services
	Controllers   *router.Controllers
	SearchLimiter *middleware.RateLimiter
}

type Repositories struct {
	Store           repository.StoreRepository
	Cheer           repository.CheerRepository
	Story           repository.StoryRepository
	Member          repository.MemberRepository
	Bookmark        repository.BookmarkRepository
	Menu            repository.MenuRepository
	BackfillAttempt repository.BackfillAttemptRepository
}

type Services struct {
	Storage  *service.StorageService
	Store    *service.StoreService
	Story    *service.StoryService
	Cheer    *service.CheerService
	Member   *service.MemberService
	Bookmark *service.BookmarkService
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	return database.InitDB(database.Options{
		DSN:   cfg.Database.DSN,
		Debug: cfg.Database.Debug,
	},
		&model.Store{},
		&model.Cheer{},
		&model.Story{},
		&model.Member{},
		&model.Bookmark{},
		&model.Menu{},
		&model.BackfillAttempt{},
	)
}

func initDependencies(cfg *config.Config, db *gorm.DB) (*Dependencies, error) {
	repos := initRepositories(db)

	storage, err := service.NewStorageService(&service.StorageConfig{
		Provider:       cfg.Storage.Provider,
		Bucket:         cfg.Storage.Bucket,
		Region:         cfg.Storage.Region,
		AccessKey:      cfg.Storage.AccessKey,
		SecretKey:      cfg.Storage.SecretKey,
		Endpoint:       cfg.Storage.Endpoint,
		PresignExpires: cfg.Storage.PresignExpires,
		URLCacheTTL:    cfg.Storage.URLCacheTTL,
		LocalBaseURL:   cfg.Storage.LocalBaseURL,
	})
	if err != nil {
		return nil, err
	}

	mapClient := kakao.NewClient(&kakao.Config{
		RestAPIKey: cfg.Kakao.RestAPIKey,
		BaseURL:    cfg.Kakao.BaseURL,
		Timeout:    cfg.Kakao.Timeout,
		PageSize:   cfg.Kakao.PageSize,
	})
	filter := service.NewStoreSearchFilter(cfg.Search.RegionPrefix)

	storeSvc := service.NewStoreService(repos.Store, repos.Cheer, repos.Menu, mapClient, filter, storage)
	svcs := &Services{
		Storage:  storage,
		Store:    storeSvc,
		Story:    service.NewStoryService(repos.Story, repos.Store, repos.Member, mapClient, filter, storage),
		Cheer:    service.NewCheerService(repos.Cheer, repos.Store, repos.Member, storeSvc, storage),
		Member:   service.NewMemberService(repos.Member),
		Bookmark: service.NewBookmarkService(repos.Bookmark, repos.Store, repos.Member, repos.Cheer, storage),
	}

	return &Dependencies{
		DB:            db,
		Repos:         repos,
		Services:      svcs,
		Controllers:   initControllers(svcs),
		SearchLimiter: middleware.NewRateLimiter(cfg.Search.RatePerSecond, cfg.Search.RateBurst),
	}, nil
}

func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Store:           repository.NewStoreRepository(db),
		Cheer:           repository.NewCheerRepository(db),
		Story:           repository.NewStoryRepository(db),
		Member:          repository.NewMemberRepository(db),
		Bookmark:        repository.NewBookmarkRepository(db),
		Menu:            repository.NewMenuRepository(db),
		BackfillAttempt: repository.NewBackfillAttemptRepository(db),
	}
}

func initControllers(svc *Services) *router.Controllers {
	return &router.Controllers{
		Store:    controller.NewStoreController(svc.Store),
		Story:    controller.NewStoryController(svc.Story),
		Cheer:    controller.NewCheerController(svc.Cheer),
		Member:   controller.NewMemberController(svc.Member),
		Bookmark: controller.NewBookmarkController(svc.Bookmark),
	}
}

// initTasks returns a func that stops every started task.
func initTasks(cfg *config.Config, deps *Dependencies) func() {
	if !cfg.Task.StoreBackfillEnabled {
		zap.L().Info("[Task] store backfill disabled")
		return func() {}
	}

	backfill := task.NewStoreBackfillTask(deps.Repos.Story, deps.Repos.BackfillAttempt, deps.Services.Store, task.StoreBackfillConfig{
		Cron:         cfg.Task.StoreBackfillCron,
		BatchSize:    cfg.Task.StoreBackfillBatch,
		RetryBackoff: cfg.Task.StoreBackfillRetryBackoff,
	})
	if err := backfill.Start(); err != nil {
		zap.L().Fatal("start store backfill task", zap.Error(err))
	}
	return backfill.Stop
}

func purgeURLCache(storage *service.StorageService, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := storage.PurgeURLCache(); n > 0 {
				zap.L().Debug("purged signed url cache", zap.Int("entries", n))
			}
		case <-stop:
			return
		}
	}
}

// ==================== Server ====================

func startServer(port string, r *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("server forced to shutdown", zap.Error(err))
	}
	zap.L().Info("server exited")
}
