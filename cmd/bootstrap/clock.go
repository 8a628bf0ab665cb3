package bootstrap

import (
	"tenancy-service/internal/domain/leave"
	"tenancy-service/internal/pkg/clock"
	"tenancy-service/internal/pkg/config"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewClock,
		NewLeavePolicy,
	),
)

// NewClock reports time in the ledger zone so month boundaries follow the
// local calendar rather than the host's.
func NewClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Ledger.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewRealClock(loc), nil
}

func NewLeavePolicy(cfg config.Config) leave.Policy {
	return leave.Policy{NoticeMonths: cfg.Ledger.LeaveNoticeMonths}
}
