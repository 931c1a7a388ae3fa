package create_rule

import (
	"context"

	manageRules "github.com/coachpoint/CP-BookingService/internal/usecase/manage_rules"
)

type ManageRulesUseCase interface {
	ExecuteCreate(ctx context.Context, req *manageRules.CreateRequest) (*manageRules.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
