package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eatda/internal/apperr"
)

func boolPtr(b bool) *bool { return &b }

func TestNewMember(t *testing.T) {
	_, err := NewMember("", "nick")
	assert.True(t, apperr.Is(err, apperr.InvalidSocialID))

	m, err := NewMember("kakao-1", "nick")
	require.NoError(t, err)
	assert.Equal(t, "kakao-1", m.SocialID)
	assert.Equal(t, "", m.PhoneNumber())
	assert.False(t, m.IsOptInMarketing())
}

func TestMember_ApplyProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile MemberProfile
		code    *apperr.Code
	}{
		{"valid", MemberProfile{Nickname: "먹짱", PhoneNumber: "01012345678", InterestArea: "마포구", OptInMarketing: boolPtr(true)}, nil},
		{"no phone", MemberProfile{Nickname: "먹짱", OptInMarketing: boolPtr(false)}, nil},
		{"missing consent", MemberProfile{Nickname: "먹짱"}, &apperr.InvalidMarketingConsent},
		{"bad phone", MemberProfile{PhoneNumber: "0101234", OptInMarketing: boolPtr(true)}, &apperr.InvalidMobilePhoneNumber},
		{"bad area", MemberProfile{InterestArea: "부산", OptInMarketing: boolPtr(true)}, &apperr.InvalidInterestArea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := NewMember("kakao-1", "before")
			err := m.ApplyProfile(tt.profile)
			if tt.code != nil {
				assert.True(t, apperr.Is(err, *tt.code), "err = %v", err)
				assert.Equal(t, "before", m.Nickname)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.profile.Nickname, m.Nickname)
			assert.Equal(t, tt.profile.PhoneNumber, m.PhoneNumber())
			assert.Equal(t, *tt.profile.OptInMarketing, m.IsOptInMarketing())
		})
	}
}

func TestMember_IsSameMobilePhoneNumber(t *testing.T) {
	m, _ := NewMember("kakao-1", "nick")
	assert.False(t, m.IsSameMobilePhoneNumber("01012345678"))

	require.NoError(t, m.ApplyProfile(MemberProfile{PhoneNumber: "01012345678", OptInMarketing: boolPtr(true)}))
	assert.True(t, m.IsSameMobilePhoneNumber("01012345678"))
	assert.False(t, m.IsSameMobilePhoneNumber("01099999999"))
}
