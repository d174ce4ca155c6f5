package controller

import (
	"github.com/gin-gonic/gin"

	"eatda/internal/api/dto"
	"eatda/internal/api/resp"
	"eatda/internal/middleware"
	"eatda/internal/service"
)

type MemberController struct {
	memberSvc *service.MemberService
}

func NewMemberController(memberSvc *service.MemberService) *MemberController {
	return &MemberController{memberSvc: memberSvc}
}

// GetMember
// @Summary Current member profile
// @Tags Member
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.MemberResp
// @Failure 401 {object} resp.ErrorResp
// @Router /api/member [get]
func (c *MemberController) GetMember(ctx *gin.Context) {
	result, err := c.memberSvc.GetMember(ctx.Request.Context(), middleware.GetMemberID(ctx))
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// Update
// @Summary Replace the current member profile
// @Tags Member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MemberUpdateReq true "profile"
// @Success 200 {object} dto.MemberResp
// @Failure 400 {object} resp.ErrorResp
// @Failure 409 {object} resp.ErrorResp "DUPLICATE_NICKNAME, DUPLICATE_PHONE_NUMBER"
// @Router /api/member [put]
func (c *MemberController) Update(ctx *gin.Context) {
	var req dto.MemberUpdateReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	result, err := c.memberSvc.Update(ctx.Request.Context(), middleware.GetMemberID(ctx), req)
	if err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.OK(ctx, result)
}

// CheckNickname
// @Summary Check nickname availability
// @Tags Member
// @Security BearerAuth
// @Param nickname query string true "nickname"
// @Success 204
// @Failure 409 {object} resp.ErrorResp "DUPLICATE_NICKNAME"
// @Router /api/member/nickname/check [get]
func (c *MemberController) CheckNickname(ctx *gin.Context) {
	var req dto.NicknameCheckReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	if err := c.memberSvc.ValidateNickname(ctx.Request.Context(), req.Nickname, middleware.GetMemberID(ctx)); err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.NoContent(ctx)
}

// CheckPhoneNumber
// @Summary Check phone number format and availability
// @Tags Member
// @Security BearerAuth
// @Param phoneNumber query string true "phone number, 010 followed by 8 digits"
// @Success 204
// @Failure 400 {object} resp.ErrorResp "INVALID_MOBILE_PHONE_NUMBER"
// @Failure 409 {object} resp.ErrorResp "DUPLICATE_PHONE_NUMBER"
// @Router /api/member/phone-number/check [get]
func (c *MemberController) CheckPhoneNumber(ctx *gin.Context) {
	var req dto.PhoneNumberCheckReq
	if err := ctx.ShouldBindQuery(&req); err != nil {
		resp.BindError(ctx, err)
		return
	}

	if err := c.memberSvc.ValidatePhoneNumber(ctx.Request.Context(), req.PhoneNumber, middleware.GetMemberID(ctx)); err != nil {
		resp.Error(ctx, err)
		return
	}
	resp.NoContent(ctx)
}
