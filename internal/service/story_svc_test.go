package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/kakao"
	"eatda/internal/model"
)

func (e *testEnv) storyService() *StoryService {
	return NewStoryService(e.stories, e.stores, e.members, e.mapClient, e.filter, e.storage)
}

func storyReq(kakaoID, imageKey string) dto.StoryRegisterReq {
	return dto.StoryRegisterReq{
		Query:        "농민백암순대",
		StoreKakaoID: kakaoID,
		Description:  "순대국이 진하다",
		ImageKey:     imageKey,
	}
}

func TestStoryService_RegisterStory(t *testing.T) {
	env := newTestEnv(t)
	env.mapClient.results = []kakao.StoreSearchResult{
		searchResult("777", "농민백암순대", "FD6", "음식점 > 한식 > 순대"),
	}
	svc := env.storyService()
	ctx := context.Background()
	member := env.createMember(t, "kakao-1", "먹보")

	resp, err := svc.RegisterStory(ctx, storyReq("777", "story/1.jpg"), member.ID)
	require.NoError(t, err)
	assert.Positive(t, resp.StoryID)
	assert.Equal(t, []string{"농민백암순대"}, env.mapClient.queries)

	story, err := env.stories.GetByID(ctx, resp.StoryID)
	require.NoError(t, err)
	require.NotNil(t, story)
	assert.Equal(t, "777", story.StoreKakaoID)
	assert.Equal(t, model.StoreCategoryKorean, story.StoreCategory)
	assert.Equal(t, "서울 강남구 대치동 896-33", story.StoreLotNumberAddress)

	store, err := env.stores.GetByKakaoID(ctx, "777")
	require.NoError(t, err)
	assert.Nil(t, store, "stories do not create stores")
}

func TestStoryService_RegisterStory_Errors(t *testing.T) {
	env := newTestEnv(t)
	env.mapClient.results = []kakao.StoreSearchResult{
		searchResult("777", "농민백암순대", "FD6", "음식점 > 한식"),
		searchResult("888", "주유소", "OL7", "교통 > 주유소"),
	}
	svc := env.storyService()
	ctx := context.Background()
	member := env.createMember(t, "kakao-1", "먹보")

	tests := []struct {
		name     string
		req      dto.StoryRegisterReq
		memberID int64
		want     apperr.Code
	}{
		{"unknown member", storyReq("777", "a.jpg"), member.ID + 100, apperr.MemberNotFound},
		{"place missing from results", storyReq("999", "a.jpg"), member.ID, apperr.StoreNotFound},
		{"place filtered out", storyReq("888", "a.jpg"), member.ID, apperr.StoreNotFound},
		{"blank image key", storyReq("777", " "), member.ID, apperr.InvalidImageKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterStory(ctx, tt.req, tt.memberID)
			assert.True(t, apperr.Is(err, tt.want), "got %v", err)
		})
	}
}

func (e *testEnv) createStory(t *testing.T, memberID int64, kakaoID, key string, createdAt time.Time) *model.Story {
	t.Helper()
	story, err := model.NewStory(model.StoryParams{
		MemberID:              memberID,
		StoreKakaoID:          kakaoID,
		StoreName:             "place-" + kakaoID,
		StoreLotNumberAddress: "서울 마포구 연남동 223-14",
		StoreCategory:         model.StoreCategoryJapanese,
		Description:           "맛있다",
		ImageKey:              key,
	})
	require.NoError(t, err)
	story.CreatedAt = createdAt
	require.NoError(t, e.stories.Create(context.Background(), story))
	return story
}

func TestStoryService_GetPagedStoryPreviews(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storyService()
	member := env.createMember(t, "kakao-1", "먹보")

	env.createStory(t, member.ID, "1", "s/1.jpg", baseTime)
	second := env.createStory(t, member.ID, "2", "s/2.jpg", baseTime.Add(time.Hour))
	third := env.createStory(t, member.ID, "3", "s/3.jpg", baseTime.Add(2*time.Hour))

	resp, err := svc.GetPagedStoryPreviews(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []dto.StoryPreviewResp{
		{StoryID: third.ID, ImageURL: "https://img.test/s/3.jpg"},
		{StoryID: second.ID, ImageURL: "https://img.test/s/2.jpg"},
	}, resp.Stories)
}

func TestStoryService_GetStory(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storyService()
	ctx := context.Background()
	member := env.createMember(t, "kakao-1", "먹보")
	story := env.createStory(t, member.ID, "555", "s/1.jpg", baseTime)

	resp, err := svc.GetStory(ctx, story.ID)
	require.NoError(t, err)
	assert.Nil(t, resp.StoreID)
	assert.Equal(t, "일식", resp.Category)
	assert.Equal(t, "마포구", resp.StoreDistrict)
	assert.Equal(t, "연남동", resp.StoreNeighborhood)
	assert.Equal(t, "먹보", resp.MemberNickname)
	assert.Equal(t, "https://img.test/s/1.jpg", resp.ImageURL)

	store := env.createStore(t, "555", model.StoreCategoryJapanese, baseTime)
	resp, err = svc.GetStory(ctx, story.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.StoreID)
	assert.Equal(t, store.ID, *resp.StoreID)

	_, err = svc.GetStory(ctx, story.ID+100)
	assert.True(t, apperr.Is(err, apperr.StoryNotFound))
}

func TestStoryService_GetPagedStoryDetails(t *testing.T) {
	env := newTestEnv(t)
	svc := env.storyService()
	ctx := context.Background()
	alice := env.createMember(t, "kakao-1", "앨리스")
	bob := env.createMember(t, "kakao-2", "밥")

	env.createStory(t, alice.ID, "555", "s/1.jpg", baseTime)
	env.createStory(t, bob.ID, "555", "s/2.jpg", baseTime.Add(time.Hour))
	env.createStory(t, bob.ID, "666", "s/3.jpg", baseTime.Add(2*time.Hour))

	resp, err := svc.GetPagedStoryDetails(ctx, "555", 10)
	require.NoError(t, err)
	require.Len(t, resp.Stories, 2)
	assert.Equal(t, "밥", resp.Stories[0].MemberNickname)
	assert.Equal(t, "https://img.test/s/2.jpg", resp.Stories[0].ImageURL)
	assert.Equal(t, "앨리스", resp.Stories[1].MemberNickname)

	resp, err = svc.GetPagedStoryDetails(ctx, "unknown", 10)
	require.NoError(t, err)
	assert.Empty(t, resp.Stories)
}
