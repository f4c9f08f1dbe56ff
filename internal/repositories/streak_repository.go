package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbm "github.com/vignesh-ravichandran/Crimson/internal/models/db_models"
)

// StreakRepository is only ever written through the streak tracker.
type StreakRepository interface {
	Get(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.Streak, error)
	Create(ctx context.Context, streak *dbm.Streak) error
	Update(ctx context.Context, streak *dbm.Streak) error
}

type streakRepository struct {
	db *gorm.DB
}

func NewStreakRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

// Get returns nil, nil when no streak row exists yet.
func (r *streakRepository) Get(ctx context.Context, accountID, journeyID uuid.UUID) (*dbm.Streak, error) {
	var streak dbm.Streak
	err := r.db.WithContext(ctx).
		Where("account_id = ? AND journey_id = ?", accountID, journeyID).
		First(&streak).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &streak, nil
}

func (r *streakRepository) Create(ctx context.Context, streak *dbm.Streak) error {
	return r.db.WithContext(ctx).Create(streak).Error
}

func (r *streakRepository) Update(ctx context.Context, streak *dbm.Streak) error {
	return r.db.WithContext(ctx).Save(streak).Error
}
