package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatda/internal/api/dto"
	"eatda/internal/middleware"
)

func setupMemberRouter(env *ctlEnv) *gin.Engine {
	ctl := NewMemberController(env.memberSvc)
	r := gin.New()
	member := r.Group("/api/member", middleware.JWTAuth())
	member.GET("", ctl.GetMember)
	member.PUT("", ctl.Update)
	member.GET("/nickname/check", ctl.CheckNickname)
	member.GET("/phone-number/check", ctl.CheckPhoneNumber)
	return r
}

func TestMemberController_GetAndUpdate(t *testing.T) {
	env := setupCtlEnv(t)
	r := setupMemberRouter(env)
	memberID, auth := env.login(t, "kakao-1", "먹보")

	w := performRequest(r, http.MethodGet, "/api/member", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, path(`{"id":%d,"isSignUp":false,"nickname":"먹보","phoneNumber":null,"interestArea":null,"optInMarketing":null}`, memberID), w.Body.String())

	update := map[string]any{
		"nickname":       "미식가",
		"phoneNumber":    "01012345678",
		"interestArea":   "마포구",
		"optInMarketing": false,
	}
	w = performRequest(r, http.MethodPut, "/api/member", update, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode[dto.MemberResp](t, w)
	assert.Equal(t, "미식가", body.Nickname)
	require.NotNil(t, body.OptInMarketing)
	assert.False(t, *body.OptInMarketing)

	w = performRequest(r, http.MethodPut, "/api/member", map[string]any{"nickname": "미식가"}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_MARKETING_CONSENT", errorCode(t, w))

	w = performRequest(r, http.MethodGet, "/api/member", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMemberController_Checks(t *testing.T) {
	env := setupCtlEnv(t)
	r := setupMemberRouter(env)
	_, auth := env.login(t, "kakao-1", "먹보")
	env.login(t, "kakao-2", "선점")

	tests := []struct {
		name   string
		url    string
		status int
		code   string
	}{
		{"free nickname", "/api/member/nickname/check?nickname=새이름", http.StatusNoContent, ""},
		{"own nickname", "/api/member/nickname/check?nickname=먹보", http.StatusNoContent, ""},
		{"taken nickname", "/api/member/nickname/check?nickname=선점", http.StatusConflict, "DUPLICATE_NICKNAME"},
		{"missing nickname", "/api/member/nickname/check", http.StatusBadRequest, "BAD_REQUEST"},
		{"valid phone", "/api/member/phone-number/check?phoneNumber=01011112222", http.StatusNoContent, ""},
		{"malformed phone", "/api/member/phone-number/check?phoneNumber=0212345678", http.StatusBadRequest, "INVALID_MOBILE_PHONE_NUMBER"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(r, http.MethodGet, tt.url, nil, auth)
			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Equal(t, tt.code, errorCode(t, w))
			}
		})
	}
}
