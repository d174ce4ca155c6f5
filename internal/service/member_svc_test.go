package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
)

func boolPtr(b bool) *bool { return &b }

func TestMemberService_Register(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMemberService(env.members)
	ctx := context.Background()

	member, created, err := svc.Register(ctx, "kakao-1", "먹보")
	require.NoError(t, err)
	assert.True(t, created)

	again, created, err := svc.Register(ctx, "kakao-1", "다른이름")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, member.ID, again.ID)
	assert.Equal(t, "먹보", again.Nickname)

	_, _, err = svc.Register(ctx, " ", "x")
	assert.True(t, apperr.Is(err, apperr.InvalidSocialID))
}

func TestMemberService_GetMember(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMemberService(env.members)
	member := env.createMember(t, "kakao-1", "먹보")

	resp, err := svc.GetMember(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, &dto.MemberResp{ID: member.ID, Nickname: "먹보"}, resp)

	_, err = svc.GetMember(context.Background(), member.ID+1)
	assert.True(t, apperr.Is(err, apperr.MemberNotFound))
}

func TestMemberService_Update(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMemberService(env.members)
	ctx := context.Background()
	member := env.createMember(t, "kakao-1", "먹보")

	resp, err := svc.Update(ctx, member.ID, dto.MemberUpdateReq{
		Nickname:       "미식가",
		PhoneNumber:    "01012345678",
		InterestArea:   "강남구",
		OptInMarketing: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "미식가", resp.Nickname)
	require.NotNil(t, resp.PhoneNumber)
	assert.Equal(t, "01012345678", *resp.PhoneNumber)
	require.NotNil(t, resp.InterestArea)
	assert.Equal(t, "강남구", *resp.InterestArea)
	assert.True(t, *resp.OptInMarketing)

	stored, err := env.members.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "미식가", stored.Nickname)
	assert.True(t, stored.IsOptInMarketing())

	// re-submitting the same values conflicts with nobody
	_, err = svc.Update(ctx, member.ID, dto.MemberUpdateReq{
		Nickname:       "미식가",
		PhoneNumber:    "01012345678",
		OptInMarketing: boolPtr(false),
	})
	require.NoError(t, err)
}

func TestMemberService_Update_Errors(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMemberService(env.members)
	ctx := context.Background()

	member := env.createMember(t, "kakao-1", "먹보")
	other := env.createMember(t, "kakao-2", "선점")
	_, err := svc.Update(ctx, other.ID, dto.MemberUpdateReq{
		Nickname: "선점", PhoneNumber: "01099998888", OptInMarketing: boolPtr(false),
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  dto.MemberUpdateReq
		want apperr.Code
	}{
		{"duplicate nickname", dto.MemberUpdateReq{Nickname: "선점", OptInMarketing: boolPtr(true)}, apperr.DuplicateNickname},
		{"duplicate phone", dto.MemberUpdateReq{Nickname: "먹보", PhoneNumber: "01099998888", OptInMarketing: boolPtr(true)}, apperr.DuplicatePhoneNumber},
		{"malformed phone", dto.MemberUpdateReq{Nickname: "먹보", PhoneNumber: "0101234", OptInMarketing: boolPtr(true)}, apperr.InvalidMobilePhoneNumber},
		{"unknown area", dto.MemberUpdateReq{Nickname: "먹보", InterestArea: "부산진구", OptInMarketing: boolPtr(true)}, apperr.InvalidInterestArea},
		{"missing consent", dto.MemberUpdateReq{Nickname: "먹보"}, apperr.InvalidMarketingConsent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, member.ID, tt.req)
			assert.True(t, apperr.Is(err, tt.want), "got %v", err)
		})
	}

	stored, err := env.members.GetByID(ctx, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "먹보", stored.Nickname, "failed updates leave the profile untouched")
	assert.Nil(t, stored.MobilePhoneNumber)
}

func TestMemberService_ValidateNicknameAndPhone(t *testing.T) {
	env := newTestEnv(t)
	svc := NewMemberService(env.members)
	ctx := context.Background()

	member := env.createMember(t, "kakao-1", "먹보")
	env.createMember(t, "kakao-2", "선점")

	assert.NoError(t, svc.ValidateNickname(ctx, "먹보", member.ID))
	assert.NoError(t, svc.ValidateNickname(ctx, "새이름", member.ID))
	assert.True(t, apperr.Is(svc.ValidateNickname(ctx, "선점", member.ID), apperr.DuplicateNickname))
	assert.True(t, apperr.Is(svc.ValidateNickname(ctx, "x", member.ID+10), apperr.MemberNotFound))

	assert.NoError(t, svc.ValidatePhoneNumber(ctx, "01011112222", member.ID))
	assert.True(t, apperr.Is(svc.ValidatePhoneNumber(ctx, "02-123-4567", member.ID), apperr.InvalidMobilePhoneNumber))
}
