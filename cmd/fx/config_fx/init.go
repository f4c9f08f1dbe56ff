package config_fx

import (
	"go.uber.org/fx"

	"github.com/vignesh-ravichandran/Crimson/internal/config"
	"github.com/vignesh-ravichandran/Crimson/pkg/logger"
	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		config.Load,
		logger.New,
	),
	fx.Invoke(func(cfg *config.Config) {
		utils.SetSigningKey(cfg.JWTSecret)
	}),
)
