package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"eatda/internal/model"
)

// ==================== MemberRepository ====================

type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetBySocialID(ctx context.Context, socialID string) (*model.Member, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Member, error)
	Update(ctx context.Context, member *model.Member) error
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
}

// ==================== Implementation ====================

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *memberRepository) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).First(&member, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetBySocialID(ctx context.Context, socialID string) (*model.Member, error) {
	var member model.Member
	err := r.db.WithContext(ctx).Where("social_id = ?", socialID).First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Member, error) {
	var members []model.Member
	if len(ids) == 0 {
		return members, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&members).Error
	return members, err
}

// Update saves every column of the member.
func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

func (r *memberRepository) ExistsByNickname(ctx context.Context, nickname string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("nickname = ?", nickname).
		Count(&count).Error
	return count > 0, err
}

func (r *memberRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Member{}).
		Where("mobile_phone_number = ?", phoneNumber).
		Count(&count).Error
	return count > 0, err
}
