package controller

import (
	"github.com/gin-gonic/gin"

	"eatda/internal/api/dto"
	"eatda/internal/api/resp"
	"eatda/internal/middleware"
	"eatda/internal/service"
)

type CheerController struct {
	cheerSvc *service.CheerService
}

func NewCheerController(cheerSvc *service.CheerService) *CheerController {
	return &CheerController{cheerSvc: cheerSvc}
}

// RegisterCheer
// @Summary Cheer a searched place with a photo
// @Description Creates the store on its first cheer.
// @Tags Cheer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CheerRegisterReq true "cheer"
// @Success 201 {object} dto.CheerRegisterResp
// @Failure 404 {object} resp.ErrorResp "STORE_NOT_FOUND, MEMBER_NOT_FOUND"
// @Failure 502 {object} resp.ErrorResp "MAP_SERVER_ERROR"
// @Router /api/cheer [post]
func (c *CheerController) RegisterCheer(ctx *gin.Context) {
	var req dto.CheerRegisterReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.cheerSvc.RegisterCheer(ctx.Request.Context(), req, middleware.GetMemberID(ctx))
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.Created(ctx, result)
}

// GetCheers
// @Summary Newest cheers
// @Tags Cheer
// @Produce json
// @Param size query int true "page size (1-50)"
// @Success 200 {object} dto.CheerListResp
// @Router /api/cheer [get]
func (c *CheerController) GetCheers(ctx *gin.Context) {
	var req dto.CheerListReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.cheerSvc.GetCheers(ctx.Request.Context(), req.Size)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}
