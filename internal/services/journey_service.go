package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/models/response_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

type JourneyServiceInterface interface {
	CreateJourney(ctx context.Context, accountID uuid.UUID, req request_models.CreateJourneyRequest) (*response_models.JourneyDetailResponse, error)
	ListJourneys(ctx context.Context, accountID *uuid.UUID, page, pageSize int, memberOnly bool) ([]response_models.JourneyResponse, int64, error)
	GetJourneyDetails(ctx context.Context, accountID *uuid.UUID, journeyID uuid.UUID) (*response_models.JourneyDetailResponse, error)
	JoinJourney(ctx context.Context, accountID, journeyID uuid.UUID, inviteToken string) error
	SendInvite(ctx context.Context, accountID, journeyID uuid.UUID, email string) (*response_models.InviteResponse, error)
}

type JourneyService struct {
	journeys repositories.JourneyRepository
	tracker  *StreakTracker
	logger   *zap.Logger
}

func NewJourneyService(journeys repositories.JourneyRepository, tracker *StreakTracker, logger *zap.Logger) JourneyServiceInterface {
	return &JourneyService{journeys: journeys, tracker: tracker, logger: logger}
}

func (j *JourneyService) CreateJourney(ctx context.Context, accountID uuid.UUID, req request_models.CreateJourneyRequest) (*response_models.JourneyDetailResponse, error) {
	if len(req.Title) < 3 || len(req.Title) > 100 {
		return nil, utils.ErrInvalidInput
	}
	if len(req.Dimensions) == 0 {
		return nil, utils.ErrInvalidInput
	}

	dimensions := make([]dbm.Dimension, 0, len(req.Dimensions))
	for i, d := range req.Dimensions {
		if d.Name == "" || d.Weight < 1 || d.Weight > 5 {
			return nil, utils.ErrInvalidInput
		}
		order := i
		if d.DisplayOrder != nil {
			order = *d.DisplayOrder
		}
		dimensions = append(dimensions, dbm.Dimension{
			Name:         d.Name,
			Description:  d.Description,
			Weight:       d.Weight,
			DisplayOrder: order,
		})
	}

	journey := &dbm.Journey{
		Title:       req.Title,
		Description: req.Description,
		IsPublic:    req.IsPublic,
		Status:      dbm.JourneyStatusActive,
		CreatedBy:   accountID,
		Dimensions:  dimensions,
	}
	if err := j.journeys.CreateJourneyWithDimensions(ctx, journey); err != nil {
		j.logger.Error("journey create failed", zap.Error(err))
		return nil, utils.ErrDatabaseError
	}

	j.logger.Info("journey created",
		zap.String("journey_id", journey.ID.String()),
		zap.String("account_id", accountID.String()))

	return j.GetJourneyDetails(ctx, &accountID, journey.ID)
}

func (j *JourneyService) ListJourneys(ctx context.Context, accountID *uuid.UUID, page, pageSize int, memberOnly bool) ([]response_models.JourneyResponse, int64, error) {
	journeys, total, err := j.journeys.ListJourneys(ctx, repositories.ListJourneysQuery{
		Page:       page,
		PageSize:   pageSize,
		MemberOnly: memberOnly,
		AccountID:  accountID,
	})
	if err != nil {
		return nil, 0, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for _, journey := range journeys {
		isMember := false
		if accountID != nil {
			for _, m := range journey.Members {
				if m.AccountID == *accountID {
					isMember = true
					break
				}
			}
		}
		out = append(out, response_models.JourneyResponse{
			ID:             journey.ID.String(),
			Title:          journey.Title,
			Description:    journey.Description,
			IsPublic:       journey.IsPublic,
			Status:         journey.Status,
			MemberCount:    len(journey.Members),
			DimensionCount: len(journey.Dimensions),
			UserIsMember:   isMember,
		})
	}
	return out, total, nil
}

func (j *JourneyService) GetJourneyDetails(ctx context.Context, accountID *uuid.UUID, journeyID uuid.UUID) (*response_models.JourneyDetailResponse, error) {
	journey, err := j.journeys.GetJourneyByID(ctx, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	var membership *dbm.JourneyMember
	if accountID != nil {
		for i := range journey.Members {
			if journey.Members[i].AccountID == *accountID {
				membership = &journey.Members[i]
				break
			}
		}
	}
	if !journey.IsPublic && membership == nil {
		return nil, utils.ErrForbidden
	}

	dimensions := make([]response_models.DimensionResponse, 0, len(journey.Dimensions))
	for _, d := range journey.Dimensions {
		dimensions = append(dimensions, response_models.DimensionResponse{
			ID:           d.ID.String(),
			Name:         d.Name,
			Description:  d.Description,
			Weight:       d.Weight,
			DisplayOrder: d.DisplayOrder,
		})
	}

	members := make([]response_models.MemberResponse, 0, len(journey.Members))
	for _, m := range journey.Members {
		members = append(members, response_models.MemberResponse{
			ID:          m.AccountID.String(),
			Username:    m.Account.Username,
			DisplayName: m.Account.DisplayName,
			AvatarURL:   m.Account.AvatarURL,
			Role:        m.Role,
		})
	}

	totalCheckins, avgScore, err := j.journeys.CheckinStats(ctx, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := response_models.JourneyStats{
		TotalCheckins: int(totalCheckins),
		AvgScore:      avgScore,
	}
	if accountID != nil && membership != nil {
		if streak, err := j.tracker.Current(ctx, *accountID, journeyID); err == nil && streak != nil {
			stats.CurrentStreak = streak.CurrentStreak
		}
	}

	return &response_models.JourneyDetailResponse{
		ID:          journey.ID.String(),
		Title:       journey.Title,
		Description: journey.Description,
		IsPublic:    journey.IsPublic,
		Status:      journey.Status,
		Dimensions:  dimensions,
		Members:     members,
		Stats:       stats,
	}, nil
}

func (j *JourneyService) JoinJourney(ctx context.Context, accountID, journeyID uuid.UUID, inviteToken string) error {
	journey, err := j.journeys.GetJourneyByID(ctx, journeyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if journey == nil {
		return utils.ErrJourneyNotFound
	}
	if journey.Status != dbm.JourneyStatusActive {
		return utils.ErrInvalidInput
	}

	isMember, err := j.journeys.IsMember(ctx, accountID, journeyID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if isMember {
		return utils.ErrAlreadyMember
	}

	if !journey.IsPublic {
		if inviteToken == "" {
			return utils.ErrInviteInvalid
		}
		invite, err := j.journeys.ConsumePendingInvite(ctx, journeyID, inviteToken)
		if err != nil {
			return utils.ErrDatabaseError
		}
		if invite == nil {
			return utils.ErrInviteInvalid
		}
	}

	member := &dbm.JourneyMember{
		JourneyID: journeyID,
		AccountID: accountID,
		Role:      dbm.MemberRoleMember,
	}
	if err := j.journeys.AddMember(ctx, member); err != nil {
		return utils.ErrDatabaseError
	}

	j.logger.Info("member joined journey",
		zap.String("journey_id", journeyID.String()),
		zap.String("account_id", accountID.String()))
	return nil
}

func (j *JourneyService) SendInvite(ctx context.Context, accountID, journeyID uuid.UUID, email string) (*response_models.InviteResponse, error) {
	member, err := j.journeys.GetMember(ctx, accountID, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if member == nil || member.Role != dbm.MemberRoleOwner {
		return nil, utils.ErrForbidden
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	invite := &dbm.JourneyInvite{
		JourneyID: journeyID,
		InvitedBy: accountID,
		Email:     email,
		Token:     token,
		Status:    dbm.InviteStatusPending,
		ExpiresAt: time.Now().AddDate(0, 0, 7),
	}
	if err := j.journeys.CreateInvite(ctx, invite); err != nil {
		return nil, utils.ErrDatabaseError
	}

	j.logger.Info("invite created",
		zap.String("journey_id", journeyID.String()),
		zap.String("email", email))

	return &response_models.InviteResponse{
		ID:        invite.ID.String(),
		JourneyID: invite.JourneyID.String(),
		Email:     invite.Email,
		Token:     invite.Token,
		Status:    invite.Status,
		ExpiresAt: invite.ExpiresAt.Format(time.RFC3339),
	}, nil
}
