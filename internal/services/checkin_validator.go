package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vignesh-ravichandran/Crimson/internal/models/request_models"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

// ValidatedCheckin is what a submission looks like after every rule has
// passed: parsed, membership-checked, and with each dimension's weight
// resolved so scoring needs no further lookups.
type ValidatedCheckin struct {
	JourneyID       uuid.UUID
	Date            time.Time
	ClientCheckinID *string
	Details         []ValidatedDetail
}

type ValidatedDetail struct {
	DimensionID   uuid.UUID
	DimensionName string
	EffortLevel   int
	Weight        int
}

type CheckinValidator struct {
	journeys   repositories.JourneyRepository
	windowDays int
	now        func() time.Time
}

func NewCheckinValidator(journeys repositories.JourneyRepository, windowDays int) *CheckinValidator {
	if windowDays < 1 {
		windowDays = 7
	}
	return &CheckinValidator{
		journeys:   journeys,
		windowDays: windowDays,
		now:        time.Now,
	}
}

// Validate applies every rule before anything is persisted. Each failure
// returns its own sentinel; a submission is never partially applied.
func (v *CheckinValidator) Validate(ctx context.Context, accountID uuid.UUID, req request_models.SubmitCheckinRequest) (*ValidatedCheckin, error) {
	if req.JourneyID == "" || req.Date == "" || len(req.Details) == 0 {
		return nil, utils.ErrMissingField
	}

	journeyID, err := uuid.Parse(req.JourneyID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, utils.ErrBadDateFormat
	}
	date = utils.Midnight(date)

	// Closed window of windowDays permissible calendar days ending today.
	today := utils.Midnight(v.now())
	earliest := today.AddDate(0, 0, -(v.windowDays - 1))
	if date.Before(earliest) || date.After(today) {
		return nil, utils.ErrDateOutOfWindow
	}

	for _, d := range req.Details {
		if d.DimensionID == "" || d.EffortLevel == 0 {
			return nil, utils.ErrMissingField
		}
		if d.EffortLevel < 1 || d.EffortLevel > 5 {
			return nil, utils.ErrInvalidEffort
		}
	}

	isMember, err := v.journeys.IsMember(ctx, accountID, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if !isMember {
		return nil, utils.ErrNotAMember
	}

	dimensions, err := v.journeys.GetDimensions(ctx, journeyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	byID := make(map[uuid.UUID]ValidatedDetail, len(dimensions))
	for _, dim := range dimensions {
		byID[dim.ID] = ValidatedDetail{
			DimensionID:   dim.ID,
			DimensionName: dim.Name,
			Weight:        dim.Weight,
		}
	}

	// Every submitted dimension must belong to the journey, and the
	// submitted set must contain no duplicates.
	seen := make(map[uuid.UUID]bool, len(req.Details))
	details := make([]ValidatedDetail, 0, len(req.Details))
	for _, d := range req.Details {
		dimID, err := uuid.Parse(d.DimensionID)
		if err != nil {
			return nil, utils.ErrUnknownDimension
		}
		resolved, ok := byID[dimID]
		if !ok || seen[dimID] {
			return nil, utils.ErrUnknownDimension
		}
		seen[dimID] = true
		resolved.EffortLevel = d.EffortLevel
		details = append(details, resolved)
	}

	return &ValidatedCheckin{
		JourneyID:       journeyID,
		Date:            date,
		ClientCheckinID: req.ClientCheckinID,
		Details:         details,
	}, nil
}
