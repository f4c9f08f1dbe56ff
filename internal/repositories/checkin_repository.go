package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

// UpsertOutcome reports what the natural-key upsert actually did, so the
// service can tell an idempotent replay apart from a real write and skip
// the streak update on the replay path.
type UpsertOutcome int

const (
	OutcomeCreated UpsertOutcome = iota
	OutcomeReplaced
	OutcomeReplayed
)

type UpsertCheckinInput struct {
	AccountID       uuid.UUID
	JourneyID       uuid.UUID
	Date            time.Time
	TotalScore      float64
	ClientCheckinID *string
	Details         []dbm.CheckinDetail
}

type CheckinRepository interface {
	// Upsert applies the full CheckinStore contract atomically: an
	// existing row bearing the same client checkin id is returned
	// untouched; otherwise the (account, journey, date) row is created
	// or has its detail set fully replaced.
	Upsert(ctx context.Context, in UpsertCheckinInput) (*dbm.Checkin, UpsertOutcome, error)
	ListByJourney(ctx context.Context, journeyID, accountID uuid.UUID, from, to *time.Time) ([]dbm.Checkin, error)
}

type checkinRepository struct {
	db *gorm.DB
}

func NewCheckinRepository(db *gorm.DB) CheckinRepository {
	return &checkinRepository{db: db}
}

func (r *checkinRepository) Upsert(ctx context.Context, in UpsertCheckinInput) (*dbm.Checkin, UpsertOutcome, error) {
	var (
		out     dbm.Checkin
		outcome UpsertOutcome
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if in.ClientCheckinID != nil && *in.ClientCheckinID != "" {
			var existing dbm.Checkin
			err := tx.Where("client_checkin_id = ?", *in.ClientCheckinID).
				Preload("Details").
				First(&existing).Error
			if err == nil {
				out = existing
				outcome = OutcomeReplayed
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		var current dbm.Checkin
		err := tx.Where("account_id = ? AND journey_id = ? AND date = ?",
			in.AccountID, in.JourneyID, in.Date).
			First(&current).Error

		switch {
		case err == nil:
			// Replace, never merge: the new detail set fully
			// supersedes the prior submission.
			current.TotalScore = in.TotalScore
			if in.ClientCheckinID != nil && *in.ClientCheckinID != "" {
				current.ClientCheckinID = in.ClientCheckinID
			}
			if err := tx.Save(&current).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().
				Where("checkin_id = ?", current.ID).
				Delete(&dbm.CheckinDetail{}).Error; err != nil {
				return err
			}
			outcome = OutcomeReplaced

		case errors.Is(err, gorm.ErrRecordNotFound):
			current = dbm.Checkin{
				AccountID:       in.AccountID,
				JourneyID:       in.JourneyID,
				Date:            in.Date,
				TotalScore:      in.TotalScore,
				ClientCheckinID: in.ClientCheckinID,
			}
			if err := tx.Create(&current).Error; err != nil {
				return err
			}
			outcome = OutcomeCreated

		default:
			return err
		}

		details := make([]dbm.CheckinDetail, len(in.Details))
		copy(details, in.Details)
		for i := range details {
			details[i].CheckinID = current.ID
		}
		if len(details) > 0 {
			if err := tx.Create(&details).Error; err != nil {
				return err
			}
		}

		current.Details = details
		out = current
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return &out, outcome, nil
}

func (r *checkinRepository) ListByJourney(ctx context.Context, journeyID, accountID uuid.UUID, from, to *time.Time) ([]dbm.Checkin, error) {
	q := r.db.WithContext(ctx).
		Where("journey_id = ? AND account_id = ?", journeyID, accountID).
		Preload("Details").
		Preload("Details.Dimension").
		Order("date DESC")

	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}

	var checkins []dbm.Checkin
	if err := q.Find(&checkins).Error; err != nil {
		return nil, err
	}
	return checkins, nil
}
