package checkin_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
)

var Module = fx.Provide(
	provideCheckinRepo,
	provideStreakRepo,
	provideStreakTracker,
	provideCheckinValidator,
	provideCheckinService,
)

func provideCheckinRepo(db *gorm.DB) repositories.CheckinRepository {
	return repositories.NewCheckinRepository(db)
}

func provideStreakRepo(db *gorm.DB) repositories.StreakRepository {
	return repositories.NewStreakRepository(db)
}

func provideStreakTracker(streakRepo repositories.StreakRepository, logger *zap.Logger) *services.StreakTracker {
	return services.NewStreakTracker(streakRepo, logger)
}

func provideCheckinValidator(journeyRepo repositories.JourneyRepository, cfg *config.Config) *services.CheckinValidator {
	return services.NewCheckinValidator(journeyRepo, cfg.CheckinWindowDays)
}

func provideCheckinService(
	validator *services.CheckinValidator,
	checkinRepo repositories.CheckinRepository,
	tracker *services.StreakTracker,
	journeyRepo repositories.JourneyRepository,
	logger *zap.Logger,
) services.CheckinServiceInterface {
	return services.NewCheckinService(validator, checkinRepo, tracker, journeyRepo, logger)
}
