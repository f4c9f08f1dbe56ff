package account_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
	"github.com/vignesh-ravichandran/Crimson/internal/repositories"
	"github.com/vignesh-ravichandran/Crimson/internal/services"
)

var Module = fx.Provide(provideAccountRepo, provideAccountService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	accountRepo repositories.AccountRepository,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, rdb, cfg, logger)
}
