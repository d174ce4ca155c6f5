package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"eatda/internal/controller"
	"eatda/internal/middleware"
	"eatda/pkg/logger"
	"eatda/pkg/metrics"

	_ "eatda/docs"
)

type Controllers struct {
	Store    *controller.StoreController
	Story    *controller.StoryController
	Cheer    *controller.CheerController
	Member   *controller.MemberController
	Bookmark *controller.BookmarkController
}

type Options struct {
	CORSAllowedOrigins []string
	SearchLimiter      *middleware.RateLimiter
	// HealthCheck backs /health. nil always reports ok.
	HealthCheck func(ctx context.Context) error
}

// New builds the engine with the shared middleware chain and every route.
func New(ctls *Controllers, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestContext(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		middleware.CORS(opts.CORSAllowedOrigins),
	)
	InitRoutes(r, ctls, opts)
	return r
}

// InitRoutes registers infra and API routes.
func InitRoutes(r *gin.Engine, ctls *Controllers, opts Options) {
	// http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/health", healthHandler(opts.HealthCheck))

	searchLimit := []gin.HandlerFunc{middleware.JWTAuth()}
	if opts.SearchLimiter != nil {
		searchLimit = append(searchLimit, opts.SearchLimiter.Handler())
	}
	auth := middleware.JWTAuth()

	api := r.Group("/api")
	{
		shops := api.Group("/shops")
		{
			shops.GET("", ctls.Store.GetStores)
			shops.GET("/:storeId", ctls.Store.GetStore)
			shops.GET("/:storeId/images", ctls.Store.GetStoreImages)
			shops.GET("/:storeId/menus", ctls.Store.GetStoreMenus)
		}
		// GET /api/shop/search
		api.GET("/shop/search", append(searchLimit, ctls.Store.SearchStores)...)

		stories := api.Group("/stories")
		{
			stories.POST("", auth, ctls.Story.RegisterStory)
			stories.GET("", ctls.Story.GetStories)
			stories.GET("/:storyId", ctls.Story.GetStory)
			stories.GET("/kakao/:kakaoId", ctls.Story.GetStoriesByKakaoID)
		}

		cheer := api.Group("/cheer")
		{
			cheer.POST("", auth, ctls.Cheer.RegisterCheer)
			cheer.GET("", ctls.Cheer.GetCheers)
		}

		member := api.Group("/member", auth)
		{
			member.GET("", ctls.Member.GetMember)
			member.PUT("", ctls.Member.Update)
			member.GET("/nickname/check", ctls.Member.CheckNickname)
			member.GET("/phone-number/check", ctls.Member.CheckPhoneNumber)
		}

		bookmarks := api.Group("/bookmarks", auth)
		{
			bookmarks.POST("", ctls.Bookmark.Create)
			bookmarks.GET("", ctls.Bookmark.List)
			bookmarks.DELETE("/:bookmarkId", ctls.Bookmark.Delete)
		}
	}
}

func healthHandler(check func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if check != nil {
			if err := check(c.Request.Context()); err != nil {
				logger.FromContext(c.Request.Context()).Error("health check failed", zap.Error(err))
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
