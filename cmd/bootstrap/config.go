package bootstrap

import (
	"time"

	"tenancy-service/internal/pkg/config"
	"tenancy-service/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and fails startup on values that would
// otherwise only break on first use.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := cfg.Ledger.Location(); err != nil {
		return config.Config{}, err
	}
	if cfg.Ledger.LeaveNoticeMonths < 0 {
		return config.Config{}, errs.Newf("LEDGER_LEAVE_NOTICE_MONTHS must not be negative, got %d", cfg.Ledger.LeaveNoticeMonths)
	}
	for name, v := range map[string]string{
		"JWT_ACCESS_TOKEN_DURATION":  cfg.JWT.AccessTokenDuration,
		"JWT_REFRESH_TOKEN_DURATION": cfg.JWT.RefreshTokenDuration,
	} {
		if _, err := time.ParseDuration(v); err != nil {
			return config.Config{}, errs.Wrapf(err, "invalid %s", name)
		}
	}
	return cfg, nil
}
