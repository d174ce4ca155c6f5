package controller

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatda/internal/api/dto"
	"eatda/internal/kakao"
	"eatda/internal/middleware"
)

func setupCheerRouter(env *ctlEnv) *gin.Engine {
	ctl := NewCheerController(env.cheerSvc)
	r := gin.New()
	r.POST("/api/cheer", middleware.JWTAuth(), ctl.RegisterCheer)
	r.GET("/api/cheer", ctl.GetCheers)
	return r
}

func TestCheerController(t *testing.T) {
	env := setupCtlEnv(t)
	r := setupCheerRouter(env)
	_, auth := env.login(t, "kakao-1", "먹보")

	env.mapClient.results = []kakao.StoreSearchResult{{
		KakaoID:           "900",
		PlaceName:         "성수 베이커리",
		CategoryGroupCode: "CE7",
		CategoryName:      "음식점 > 카페 > 베이커리",
		LotNumberAddress:  "서울 성동구 성수동2가 3",
	}}

	req := dto.CheerRegisterReq{Query: "성수 베이커리", StoreKakaoID: "900", Description: "빵이 맛있다", ImageKey: "cheer/bread.jpg"}
	w := performRequest(r, http.MethodPost, "/api/cheer", req, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[dto.CheerRegisterResp](t, w)
	assert.Positive(t, created.StoreID)

	w = performRequest(r, http.MethodGet, "/api/cheer?size=10", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[dto.CheerListResp](t, w)
	require.Len(t, list.Cheers, 1)
	assert.Equal(t, created.StoreID, list.Cheers[0].StoreID)
	assert.Equal(t, "카페", list.Cheers[0].Category)
	assert.Equal(t, "https://img.test/cheer/bread.jpg", list.Cheers[0].ImageURL)

	w = performRequest(r, http.MethodPost, "/api/cheer", dto.CheerRegisterReq{Query: "x", StoreKakaoID: "900"}, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(r, http.MethodGet, "/api/cheer?size=100", nil, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
