package bootstrap

import (
	"time"

	"tenancy-service/internal/pkg/config"
	"tenancy-service/internal/pkg/errs"
	"tenancy-service/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	access, err := time.ParseDuration(cfg.JWT.AccessTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_ACCESS_TOKEN_DURATION")
	}
	refresh, err := time.ParseDuration(cfg.JWT.RefreshTokenDuration)
	if err != nil {
		return nil, errs.Wrap(err, "invalid JWT_REFRESH_TOKEN_DURATION")
	}
	if refresh <= access {
		return nil, errs.New("refresh tokens must outlive access tokens")
	}
	return jwt.NewService(cfg.JWT.Secret, access, refresh), nil
}
