package controller

import (
	"github.com/gin-gonic/gin"

	"eatda/internal/api/dto"
	"eatda/internal/api/resp"
	"eatda/internal/middleware"
	"eatda/internal/service"
)

type BookmarkController struct {
	bookmarkSvc *service.BookmarkService
}

func NewBookmarkController(bookmarkSvc *service.BookmarkService) *BookmarkController {
	return &BookmarkController{bookmarkSvc: bookmarkSvc}
}

// Create
// @Summary Bookmark a store
// @Tags Bookmark
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookmarkCreateReq true "store to bookmark"
// @Success 201 {object} dto.BookmarkCreateResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND"
// @Failure 409 {object} resp.ErrorResp "BOOKMARK_ALREADY_EXISTS"
// @Router /api/bookmarks [post]
func (c *BookmarkController) Create(ctx *gin.Context) {
	var req dto.BookmarkCreateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.bookmarkSvc.Create(ctx.Request.Context(), middleware.GetMemberID(ctx), req)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.Created(ctx, result)
}

// List
// @Summary Current member's bookmarks, newest first
// @Tags Bookmark
// @Produce json
// @Security BearerAuth
// @Param size query int true "page size (1-50)"
// @Success 200 {object} dto.BookmarkListResp
// @Router /api/bookmarks [get]
func (c *BookmarkController) List(ctx *gin.Context) {
	var req dto.BookmarkListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.bookmarkSvc.List(ctx.Request.Context(), middleware.GetMemberID(ctx), req.Size)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// Delete
// @Summary Remove one of the current member's bookmarks
// @Tags Bookmark
// @Security BearerAuth
// @Param bookmarkId path int true "bookmark id"
// @Success 204
// @Failure 404 {object} resp.ErrorResp "BOOKMARK_NOT_FOUND"
// @Router /api/bookmarks/{bookmarkId} [delete]
func (c *BookmarkController) Delete(ctx *gin.Context) {
	bookmarkID, ok := pathID(ctx, "bookmarkId")
	if !ok {
		return
	}

	if err := c.bookmarkSvc.Delete(ctx.Request.Context(), middleware.GetMemberID(ctx), bookmarkID); err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.NoContent(ctx)
}
