package journey_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
)

var Module = fx.Provide(provideJourneyRepo, provideJourneyService)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}

func provideJourneyService(
	journeyRepo repositories.JourneyRepository,
	tracker *services.StreakTracker,
	logger *zap.Logger,
) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo, tracker, logger)
}
