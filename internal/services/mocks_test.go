package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
)

// In-memory repository doubles shared by the service tests. They model
// just enough of the real repositories' contracts for the services to
// behave as they would against postgres.

type stubJourneyRepo struct {
	members    map[string]bool
	dimensions map[uuid.UUID][]dbm.Dimension
	touched    int
	memberErr  error
}

func newStubJourneyRepo() *stubJourneyRepo {
	return &stubJourneyRepo{
		members:    make(map[string]bool),
		dimensions: make(map[uuid.UUID][]dbm.Dimension),
	}
}

func memberKey(accountID, journeyID uuid.UUID) string {
	return accountID.String() + ":" + journeyID.String()
}

func (s *stubJourneyRepo) addMember(accountID, journeyID uuid.UUID) {
	s.members[memberKey(accountID, journeyID)] = true
}

func (s *stubJourneyRepo) IsMember(ctx context.Context, accountID, journeyID uuid.UUID) (bool, error) {
	if s.memberErr != nil {
		return false, s.memberErr
	}
	return s.members[memberKey(accountID, journeyID)], nil
}

func (s *stubJourneyRepo) GetDimensions(ctx context.Context, journeyID uuid.UUID) ([]dbm.Dimension, error) {
	return s.dimensions[journeyID], nil
}

func (s *stubJourneyRepo) TouchMemberCheckin(ctx context.Context, accountID, journeyID uuid.UUID, at time.Time) error {
	s.touched++
	return nil
}

func (s *stubJourneyRepo) CreateJourneyWithDimensions(ctx context.Context, journey *dbm.Journey) error {
	return nil
}

func (s *stubJourneyRepo) GetJourneyByID(ctx context.Context, journeyID uuid.UUID) (*dbm.Journey, error) {
	return nil, errors.New("not implemented")
}

func (s *stubJourneyRepo) ListJourneys(ctx context.Context, q repositories.ListJourneysQuery) ([]dbm.Journey, int64, error) {
	return nil, 0, nil
}

func (s *stubJourneyRepo) GetMember(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.JourneyMember, error) {
	return nil, nil
}

func (s *stubJourneyRepo) AddMember(ctx context.Context, member *dbm.JourneyMember) error {
	return nil
}

func (s *stubJourneyRepo) CreateInvite(ctx context.Context, invite *dbm.JourneyInvite) error {
	return nil
}

func (s *stubJourneyRepo) ConsumePendingInvite(ctx context.Context, journeyID uuid.UUID, token string) (*dbm.JourneyInvite, error) {
	return nil, nil
}

func (s *stubJourneyRepo) CheckinStats(ctx context.Context, journeyID uuid.UUID) (int64, float64, error) {
	return 0, 0, nil
}

type stubStreakRepo struct {
	streaks map[string]*dbm.Streak
	// failWrites makes the next N Create/Update calls fail, for
	// exercising the retry path.
	failWrites int
	writeCalls int
}

func newStubStreakRepo() *stubStreakRepo {
	return &stubStreakRepo{streaks: make(map[string]*dbm.Streak)}
}

func (s *stubStreakRepo) Get(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.Streak, error) {
	streak, ok := s.streaks[memberKey(accountID, journeyID)]
	if !ok {
		return nil, nil
	}
	cp := *streak
	return &cp, nil
}

func (s *stubStreakRepo) Create(ctx context.Context, streak *dbm.Streak) error {
	return s.write(streak)
}

func (s *stubStreakRepo) Update(ctx context.Context, streak *dbm.Streak) error {
	return s.write(streak)
}

func (s *stubStreakRepo) write(streak *dbm.Streak) error {
	s.writeCalls++
	if s.failWrites > 0 {
		s.failWrites--
		return errors.New("write refused")
	}
	cp := *streak
	s.streaks[memberKey(streak.AccountID, streak.JourneyID)] = &cp
	return nil
}

type stubCheckinRepo struct {
	byClientID map[string]*dbm.Checkin
	byNatural  map[string]*dbm.Checkin
}

func newStubCheckinRepo() *stubCheckinRepo {
	return &stubCheckinRepo{
		byClientID: make(map[string]*dbm.Checkin),
		byNatural:  make(map[string]*dbm.Checkin),
	}
}

func naturalKey(accountID, journeyID uuid.UUID, date time.Time) string {
	return accountID.String() + ":" + journeyID.String() + ":" + date.Format("2006-01-02")
}

func (s *stubCheckinRepo) Upsert(ctx context.Context, in repositories.UpsertCheckinInput) (*dbm.Checkin, repositories.UpsertOutcome, error) {
	if in.ClientCheckinID != nil && *in.ClientCheckinID != "" {
		if existing, ok := s.byClientID[*in.ClientCheckinID]; ok {
			cp := *existing
			return &cp, repositories.OutcomeReplayed, nil
		}
	}

	key := naturalKey(in.AccountID, in.JourneyID, in.Date)
	current, exists := s.byNatural[key]
	outcome := repositories.OutcomeCreated
	if exists {
		outcome = repositories.OutcomeReplaced
		current.TotalScore = in.TotalScore
		if in.ClientCheckinID != nil && *in.ClientCheckinID != "" {
			current.ClientCheckinID = in.ClientCheckinID
		}
	} else {
		current = &dbm.Checkin{
			BaseModel:       dbm.BaseModel{ID: uuid.New()},
			AccountID:       in.AccountID,
			JourneyID:       in.JourneyID,
			Date:            in.Date,
			TotalScore:      in.TotalScore,
			ClientCheckinID: in.ClientCheckinID,
		}
		s.byNatural[key] = current
	}

	details := make([]dbm.CheckinDetail, len(in.Details))
	copy(details, in.Details)
	for i := range details {
		details[i].CheckinID = current.ID
		details[i].ID = uuid.New()
	}
	current.Details = details

	if current.ClientCheckinID != nil && *current.ClientCheckinID != "" {
		s.byClientID[*current.ClientCheckinID] = current
	}

	cp := *current
	return &cp, outcome, nil
}

type stubAnalyticsRepo struct {
	dimensionAverages    []repositories.DimensionAverage
	dailyTotals          []repositories.DailyTotal
	dailyDimensionScores []repositories.DailyDimensionScore
}

func (s *stubAnalyticsRepo) DimensionAverages(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]repositories.DimensionAverage, error) {
	return s.dimensionAverages, nil
}

func (s *stubAnalyticsRepo) DailyTotals(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]repositories.DailyTotal, error) {
	return s.dailyTotals, nil
}

func (s *stubAnalyticsRepo) DailyDimensionScores(ctx context.Context, journeyID, accountID uuid.UUID, from, to time.Time) ([]repositories.DailyDimensionScore, error) {
	return s.dailyDimensionScores, nil
}

func (s *stubCheckinRepo) ListByJourney(ctx context.Context, journeyID, accountID uuid.UUID, from, to *time.Time) ([]dbm.Checkin, error) {
	var out []dbm.Checkin
	for _, c := range s.byNatural {
		if c.JourneyID != journeyID || c.AccountID != accountID {
			continue
		}
		if from != nil && c.Date.Before(*from) {
			continue
		}
		if to != nil && c.Date.After(*to) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}
