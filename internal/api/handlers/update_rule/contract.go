package update_rule

import (
	"context"

	manageRules "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
)

type ManageRulesUseCase interface {
	ExecuteSetActive(ctx context.Context, req *manageRules.SetActiveRequest) (*manageRules.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
