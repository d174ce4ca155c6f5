package model

import (
	"regexp"
	"strings"

	"eatda/internal/apperr"
)

var mobilePhonePattern = regexp.MustCompile(`^010\d{8}$`)

// Member is a socially-authenticated user. Profile fields stay empty until the
// member completes sign-up through a profile update.
type Member struct {
	BaseModel

	SocialID          string  `gorm:"size:128;uniqueIndex;not null" json:"social_id"`
	Nickname          string  `gorm:"size:64;index" json:"nickname"`
	MobilePhoneNumber *string `gorm:"size:16;uniqueIndex" json:"mobile_phone_number"`
	InterestArea      string  `gorm:"size:32" json:"interest_area"`
	OptInMarketing    *bool   `json:"opt_in_marketing"`
}

// MemberProfile is the full set of fields a profile update replaces.
type MemberProfile struct {
	Nickname       string
	PhoneNumber    string
	InterestArea   string
	OptInMarketing *bool
}

func NewMember(socialID, nickname string) (*Member, error) {
	if strings.TrimSpace(socialID) == "" {
		return nil, apperr.New(apperr.InvalidSocialID)
	}
	return &Member{SocialID: socialID, Nickname: nickname}, nil
}

// ValidateMobilePhoneNumber accepts 11-digit numbers starting with 010.
func ValidateMobilePhoneNumber(phone string) error {
	if !mobilePhonePattern.MatchString(phone) {
		return apperr.New(apperr.InvalidMobilePhoneNumber)
	}
	return nil
}

// ApplyProfile validates p and overwrites every profile field.
func (m *Member) ApplyProfile(p MemberProfile) error {
	if p.OptInMarketing == nil {
		return apperr.New(apperr.InvalidMarketingConsent)
	}
	var phone *string
	if p.PhoneNumber != "" {
		if err := ValidateMobilePhoneNumber(p.PhoneNumber); err != nil {
			return err
		}
		phone = &p.PhoneNumber
	}
	if err := ValidateInterestArea(p.InterestArea); err != nil {
		return err
	}

	optIn := *p.OptInMarketing
	m.Nickname = p.Nickname
	m.MobilePhoneNumber = phone
	m.InterestArea = p.InterestArea
	m.OptInMarketing = &optIn
	return nil
}

func (m *Member) IsSameNickname(nickname string) bool {
	return m.Nickname == nickname
}

func (m *Member) IsSameMobilePhoneNumber(phone string) bool {
	return m.MobilePhoneNumber != nil && *m.MobilePhoneNumber == phone
}

// PhoneNumber returns "" when no number is registered.
func (m *Member) PhoneNumber() string {
	if m.MobilePhoneNumber == nil {
		return ""
	}
	return *m.MobilePhoneNumber
}

func (m *Member) IsOptInMarketing() bool {
	return m.OptInMarketing != nil && *m.OptInMarketing
}
