package controller

import (
	"github.com/gin-gonic/gin"

	"eatda/internal/api/dto"
	"eatda/internal/api/resp"
	"eatda/internal/middleware"
	"eatda/internal/service"
)

type StoryController struct {
	storySvc *service.StoryService
}

func NewStoryController(storySvc *service.StoryService) *StoryController {
	return &StoryController{storySvc: storySvc}
}

// RegisterStory
// @Summary Write a story about a searched place
// @Tags Story
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StoryRegisterReq true "story"
// @Success 201 {object} dto.StoryRegisterResp
// @Failure 400 {object} resp.ErrorResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND, MEMBER_NOT_FOUND"
// @Router /api/stories [post]
func (c *StoryController) RegisterStory(ctx *gin.Context) {
	var req dto.StoryRegisterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.storySvc.RegisterStory(ctx.Request.Context(), req, middleware.GetMemberID(ctx))
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.Created(ctx, result)
}

// GetStories
// @Summary Newest story previews
// @Tags Story
// @Produce json
// @Param size query int true "page size (1-50)"
// @Success 200 {object} dto.StoryListResp
// @Router /api/stories [get]
func (c *StoryController) GetStories(ctx *gin.Context) {
	var req dto.StoryListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.storySvc.GetPagedStoryPreviews(ctx.Request.Context(), req.Size)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// GetStory
// @Summary Story detail
// @Tags Story
// @Produce json
// @Param storyId path int true "story id"
// @Success 200 {object} dto.StoryResp
// @Failure 404 {object} resp.ErrorResp "STORY_NOT_FOUND"
// @Router /api/stories/{storyId} [get]
func (c *StoryController) GetStory(ctx *gin.Context) {
	storyID, ok := pathID(ctx, "storyId")
	if !ok {
		return
	}

	result, err := c.storySvc.GetStory(ctx.Request.Context(), storyID)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// GetStoriesByKakaoID
// @Summary Stories of one place
// @Tags Story
// @Produce json
// @Param kakaoId path string true "map provider place id"
// @Param size query int true "page size (1-50)"
// @Success 200 {object} dto.StoryDetailListResp
// @Router /api/stories/kakao/{kakaoId} [get]
func (c *StoryController) GetStoriesByKakaoID(ctx *gin.Context) {
	var req dto.StoryListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.storySvc.GetPagedStoryDetails(ctx.Request.Context(), ctx.Param("kakaoId"), req.Size)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}
