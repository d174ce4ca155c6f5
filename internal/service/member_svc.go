package service

import (
	"context"
	"fmt"

	"eatda/internal/api/dto"
	"eatda/internal/apperr"
	"eatda/internal/model"
	"eatda/internal/repository"
)

// ==================== MemberService ====================

type MemberService struct {
	memberRepo repository.MemberRepository
}

func NewMemberService(memberRepo repository.MemberRepository) *MemberService {
	return &MemberService{memberRepo: memberRepo}
}

// Register finds the member by social id or creates one. created reports a new row.
func (s *MemberService) Register(ctx context.Context, socialID, nickname string) (member *model.Member, created bool, err error) {
	existing, err := s.memberRepo.GetBySocialID(ctx, socialID)
	if err != nil {
		return nil, false, fmt.Errorf("query member: %w", err)
	}
	if existing != nil {
		return existing, false, nil
	}

	member, err = model.NewMember(socialID, nickname)
	if err != nil {
		return nil, false, err
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, false, fmt.Errorf("save member: %w", err)
	}
	return member, true, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID int64) (*dto.MemberResp, error) {
	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return toMemberResp(member), nil
}

// ValidateNickname passes when the nickname is free or already the member's own.
func (s *MemberService) ValidateNickname(ctx context.Context, nickname string, memberID int64) error {
	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}
	return s.checkNickname(ctx, member, nickname)
}

// ValidatePhoneNumber passes when the number is well-formed and free or already the member's own.
func (s *MemberService) ValidatePhoneNumber(ctx context.Context, phoneNumber string, memberID int64) error {
	if err := model.ValidateMobilePhoneNumber(phoneNumber); err != nil {
		return err
	}
	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return err
	}
	return s.checkPhoneNumber(ctx, member, phoneNumber)
}

func (s *MemberService) Update(ctx context.Context, memberID int64, req dto.MemberUpdateReq) (*dto.MemberResp, error) {
	member, err := s.getMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.checkNickname(ctx, member, req.Nickname); err != nil {
		return nil, err
	}
	if req.PhoneNumber != "" {
		if err := s.checkPhoneNumber(ctx, member, req.PhoneNumber); err != nil {
			return nil, err
		}
	}

	err = member.ApplyProfile(model.MemberProfile{
		Nickname:       req.Nickname,
		PhoneNumber:    req.PhoneNumber,
		InterestArea:   req.InterestArea,
		OptInMarketing: req.OptInMarketing,
	})
	if err != nil {
		return nil, err
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return toMemberResp(member), nil
}

func (s *MemberService) getMember(ctx context.Context, memberID int64) (*model.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	if member == nil {
		return nil, apperr.New(apperr.MemberNotFound)
	}
	return member, nil
}

func (s *MemberService) checkNickname(ctx context.Context, member *model.Member, nickname string) error {
	if member.IsSameNickname(nickname) {
		return nil
	}
	exists, err := s.memberRepo.ExistsByNickname(ctx, nickname)
	if err != nil {
		return fmt.Errorf("check nickname: %w", err)
	}
	if exists {
		return apperr.New(apperr.DuplicateNickname)
	}
	return nil
}

func (s *MemberService) checkPhoneNumber(ctx context.Context, member *model.Member, phoneNumber string) error {
	if member.IsSameMobilePhoneNumber(phoneNumber) {
		return nil
	}
	exists, err := s.memberRepo.ExistsByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return fmt.Errorf("check phone number: %w", err)
	}
	if exists {
		return apperr.New(apperr.DuplicatePhoneNumber)
	}
	return nil
}

func toMemberResp(m *model.Member) *dto.MemberResp {
	resp := &dto.MemberResp{
		ID:             m.ID,
		IsSignUp:       false,
		Nickname:       m.Nickname,
		PhoneNumber:    m.MobilePhoneNumber,
		OptInMarketing: m.OptInMarketing,
	}
	if m.InterestArea != "" {
		area := m.InterestArea
		resp.InterestArea = &area
	}
	return resp
}
