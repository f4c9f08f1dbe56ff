package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

type ListJourneysQuery struct {
	Page       int
	PageSize   int
	MemberOnly bool
	AccountID  *uuid.UUID
}

type JourneyRepository interface {
	CreateJourneyWithDimensions(ctx context.Context, journey *dbm.Journey) error
	GetJourneyByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error)
	ListJourneys(ctx context.Context, q ListJourneysQuery) ([]dbm.Journey, int64, error)

	IsMember(ctx context.Context, accountID, journeyID uuid.UUID) (bool, error)
	GetMember(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.JourneyMember, error)
	GetDimensions(ctx context.Context, journeyID uuid.UUID) ([]dbm.Dimension, error)
	AddMember(ctx context.Context, member *dbm.JourneyMember) error
	TouchMemberCheckin(ctx context.Context, accountID, journeyID uuid.UUID, at time.Time) error

	CreateInvite(ctx context.Context, invite *dbm.JourneyInvite) error
	ConsumePendingInvite(ctx context.Context, journeyID uuid.UUID, token string) (*dbm.JourneyInvite, error)

	CheckinStats(ctx context.Context, journeyID uuid.UUID) (total int64, avgScore float64, err error)
}

type journeyRepository struct {
	db *gorm.DB
}

func NewJourneyRepository(db *gorm.DB) JourneyRepository {
	return &journeyRepository{db: db}
}

// CreateJourneyWithDimensions persists the journey, its dimensions and
// the creator's owner membership in one transaction.
func (r *journeyRepository) CreateJourneyWithDimensions(ctx context.Context, journey *dbm.Journey) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(journey).Error; err != nil {
			return err
		}
		owner := dbm.JourneyMember{
			JourneyID: journey.ID,
			AccountID: journey.CreatedBy,
			Role:      dbm.MemberRoleOwner,
		}
		return tx.Create(&owner).Error
	})
}

func (r *journeyRepository) GetJourneyByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error) {
	var journey dbm.Journey
	err := r.db.WithContext(ctx).
		Where("id = ?", journeyID).
		Preload("Dimensions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Members").
		Preload("Members.Account").
		First(&journey).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &journey, nil
}

func (r *journeyRepository) ListJourneys(ctx context.Context, q ListJourneysQuery) ([]dbm.Journey, int64, error) {
	base := r.db.WithContext(ctx).Model(&dbm.Journey{}).
		Where("status = ?", dbm.JourneyStatusActive)

	switch {
	case q.MemberOnly && q.AccountID != nil:
		base = base.Where("id IN (?)", r.db.Model(&dbm.JourneyMember{}).
			Select("journey_id").
			Where("account_id = ?", *q.AccountID))
	case q.AccountID != nil:
		base = base.Where("is_public = ? OR id IN (?)", true,
			r.db.Model(&dbm.JourneyMember{}).
				Select("journey_id").
				Where("account_id = ?", *q.AccountID))
	default:
		base = base.Where("is_public = ?", true)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var journeys []dbm.Journey
	err := base.
		Preload("Dimensions").
		Preload("Members").
		Order("created_at DESC").
		Offset((q.Page - 1) * q.PageSize).
		Limit(q.PageSize).
		Find(&journeys).Error
	if err != nil {
		return nil, 0, err
	}
	return journeys, total, nil
}

func (r *journeyRepository) IsMember(ctx context.Context, accountID, journeyID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&dbm.JourneyMember{}).
		Where("account_id = ? AND journey_id = ?", accountID, journeyID).
		Count(&count).Error
	return count > 0, err
}

func (r *journeyRepository) GetMember(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.JourneyMember, error) {
	var member dbm.JourneyMember
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND journey_id = ?", accountID, journeyID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *journeyRepository) GetDimensions(ctx context.Context, journeyID uuid.UUID) ([]dbm.Dimension, error) {
	var dimensions []dbm.Dimension
	err := r.db.WithContext(ctx).
		Where("journey_id = ?", journeyID).
		Order("display_order ASC").
		Find(&dimensions).Error
	if err != nil {
		return nil, err
	}
	return dimensions, nil
}

func (r *journeyRepository) AddMember(ctx context.Context, member *dbm.JourneyMember) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *journeyRepository) TouchMemberCheckin(ctx context.Context, accountID, journeyID uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&dbm.JourneyMember{}).
		Where("account_id = ? AND journey_id = ?", accountID, journeyID).
		Update("last_checkin_at", at).Error
}

func (r *journeyRepository) CreateInvite(ctx context.Context, invite *dbm.JourneyInvite) error {
	return r.db.WithContext(ctx).Create(invite).Error
}

// ConsumePendingInvite marks a matching unexpired invite accepted and
// returns it; nil, nil when no such invite exists.
func (r *journeyRepository) ConsumePendingInvite(ctx context.Context, journeyID uuid.UUID, token string) (*dbm.JourneyInvite, error) {
	var invite dbm.JourneyInvite
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("journey_id = ? AND token = ? AND status = ? AND expires_at > ?",
			journeyID, token, dbm.InviteStatusPending, time.Now()).
			First(&invite).Error
		if err != nil {
			return err
		}
		now := time.Now()
		invite.Status = dbm.InviteStatusAccepted
		invite.AcceptedAt = &now
		return tx.Save(&invite).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &invite, nil
}

func (r *journeyRepository) CheckinStats(ctx context.Context, journeyID uuid.UUID) (int64, float64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&dbm.Checkin{}).
		Where("journey_id = ?", journeyID).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if total == 0 {
		return 0, 0, nil
	}

	var avg float64
	err := r.db.WithContext(ctx).Model(&dbm.Checkin{}).
		Where("journey_id = ?", journeyID).
		Select("COALESCE(AVG(total_score), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, 0, err
	}
	return total, avg, nil
}
