package dto

// MemberUpdateReq replaces the whole profile. optInMarketing must be present.
type MemberUpdateReq struct {
	Nickname       string `json:"nickname" binding:"required"`
	PhoneNumber    string `json:"phoneNumber"`
	InterestArea   string `json:"interestArea"`
	OptInMarketing *bool  `json:"optInMarketing"`
}

type NicknameCheckReq struct {
	Nickname string `form:"nickname" binding:"required"`
}

type PhoneNumberCheckReq struct {
	PhoneNumber string `form:"phoneNumber" binding:"required"`
}

type MemberResp struct {
	ID             int64   `json:"id"`
	IsSignUp       bool    `json:"isSignUp"`
	Nickname       string  `json:"nickname"`
	PhoneNumber    *string `json:"phoneNumber"`
	InterestArea   *string `json:"interestArea"`
	OptInMarketing *bool   `json:"optInMarketing"`
}
