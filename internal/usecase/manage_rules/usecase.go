package manage_rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	availabilityStorage "github.com/coachpoint/CP-BookingService/internal/infra/storage/availability"
)

// UseCase use case для управления правилами доступности тренера
type UseCase struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// ExecuteCreate создает новое правило доступности
// Правило создается активным и сразу проецируется в слоты
func (uc *UseCase) ExecuteCreate(ctx context.Context, req *CreateRequest) (*Response, error) {
	uc.logger.Info("ManageRules: create type=%s, start=%s", req.Type, req.StartTime)

	// 1. Валидация входных данных
	if err := validateCreateRequest(req); err != nil {
		uc.logger.Warn("ManageRules: validation failed: %v", err)
		return nil, err
	}

	maxBookings := req.MaxBookings
	if maxBookings == 0 {
		maxBookings = domain.DefaultMaxBookingsPerSlot
	}

	// 2. Создаем правило
	rule, err := uc.availabilityRepo.CreateRule(ctx, &domain.AvailabilityRule{
		Type:         domain.RuleType(req.Type),
		DayOfWeek:    req.DayOfWeek,
		SpecificDate: req.SpecificDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		MaxBookings:  maxBookings,
		IsActive:     true,
	})
	if err != nil {
		uc.logger.Error("ManageRules: failed to create rule: %v", err)
		return nil, fmt.Errorf("%w: failed to create rule: %v", ErrInternal, err)
	}

	uc.logger.Info("ManageRules: created rule id=%d type=%s", rule.ID, rule.Type)

	return toResponse(rule), nil
}

// ExecuteSetActive включает или выключает правило
// Выключенное правило перестаёт порождать слоты, существующие бронирования
// не затрагиваются
func (uc *UseCase) ExecuteSetActive(ctx context.Context, req *SetActiveRequest) (*Response, error) {
	uc.logger.Info("ManageRules: set active rule=%d, active=%t", req.RuleID, req.IsActive)

	if req.RuleID <= 0 {
		return nil, fmt.Errorf("%w: ruleId must be positive", ErrInvalidInput)
	}

	if err := uc.availabilityRepo.SetActive(ctx, req.RuleID, req.IsActive); err != nil {
		if errors.Is(err, availabilityStorage.ErrRuleNotFound) {
			uc.logger.Warn("ManageRules: rule id=%d not found", req.RuleID)
			return nil, ErrRuleNotFound
		}
		uc.logger.Error("ManageRules: failed to set active for rule id=%d: %v", req.RuleID, err)
		return nil, fmt.Errorf("%w: failed to set active: %v", ErrInternal, err)
	}

	uc.logger.Info("ManageRules: rule id=%d active=%t", req.RuleID, req.IsActive)

	return &Response{ID: req.RuleID, IsActive: req.IsActive}, nil
}
