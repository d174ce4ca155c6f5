package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"eatda/internal/api/dto"
	"eatda/internal/api/resp"
	"eatda/internal/apperr"
	"eatda/internal/service"
)

type StoreController struct {
	storeSvc *service.StoreService
}

func NewStoreController(storeSvc *service.StoreService) *StoreController {
	return &StoreController{storeSvc: storeSvc}
}

// GetStore
// @Summary Store detail
// @Tags Store
// @Produce json
// @Param storeId path int true "store id"
// @Success 200 {object} dto.StoreResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND"
// @Router /api/shops/{storeId} [get]
func (c *StoreController) GetStore(ctx *gin.Context) {
	storeID, ok := pathID(ctx, "storeId")
	if !ok {
		return
	}

	result, err := c.storeSvc.GetStore(ctx.Request.Context(), storeID)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// GetStores
// @Summary Newest stores
// @Description Lists the newest stores with their latest cheer image. category takes a display label such as 한식.
// @Tags Store
// @Produce json
// @Param size query int true "page size (1-50)"
// @Param category query string false "category label"
// @Success 200 {object} dto.StoreListResp
// @Failure 400 {object} resp.ErrorResp "BAD_REQUEST, INVALID_STORE_CATEGORY"
// @Failure 502 {object} resp.ErrorResp "PRESIGNED_URL_GENERATION_FAILED"
// @Router /api/shops [get]
func (c *StoreController) GetStores(ctx *gin.Context) {
	var req dto.StoreListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.storeSvc.GetStores(ctx.Request.Context(), req.Size, req.Category)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// GetStoreImages
// @Summary Store image gallery
// @Tags Store
// @Produce json
// @Param storeId path int true "store id"
// @Success 200 {object} dto.ImagesResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND"
// @Router /api/shops/{storeId}/images [get]
func (c *StoreController) GetStoreImages(ctx *gin.Context) {
	storeID, ok := pathID(ctx, "storeId")
	if !ok {
		return
	}

	result, err := c.storeSvc.GetStoreImages(ctx.Request.Context(), storeID)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// GetStoreMenus
// @Summary Store menus
// @Tags Store
// @Produce json
// @Param storeId path int true "store id"
// @Success 200 {object} dto.MenuListResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND"
// @Router /api/shops/{storeId}/menus [get]
func (c *StoreController) GetStoreMenus(ctx *gin.Context) {
	storeID, ok := pathID(ctx, "storeId")
	if !ok {
		return
	}

	result, err := c.storeSvc.GetStoreMenus(ctx.Request.Context(), storeID)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// SearchStores
// @Summary Search places on the map provider
// @Tags Store
// @Produce json
// @Security BearerAuth
// @Param query query string true "search keyword"
// @Success 200 {object} dto.StoreSearchListResp
// @Failure 401 {object} resp.ErrorResp "UNAUTHORIZED_MEMBER"
// @Failure 429 {object} resp.ErrorResp "TOO_MANY_REQUESTS"
// @Failure 502 {object} resp.ErrorResp "MAP_SERVER_ERROR"
// @Router /api/shop/search [get]
func (c *StoreController) SearchStores(ctx *gin.Context) {
	var req dto.StoreSearchReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.storeSvc.SearchStores(ctx.Request.Context(), req.Query)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// pathID renders BAD_REQUEST and returns false for non-numeric ids.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		resp.Error(ctx, apperr.New(apperr.BadRequest))
		return 0, false
	}
	return id, true
}
