package block_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	availabilityStorage "github.com/coachpoint/CP-BookingService/internal/infra/storage/availability"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
)

// UseCase use case для административного управления слотами
// Обе операции идемпотентны: повторная блокировка занятого слота и снятие
// несуществующей блокировки завершаются успехом с AffectedSlots = 0
type UseCase struct {
	blockRepo        AdminBlockRepository
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	blockRepo AdminBlockRepository,
	availabilityRepo AvailabilityRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		blockRepo:        blockRepo,
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// ExecuteSlot выполняет блокировку или разблокировку одного слота
func (uc *UseCase) ExecuteSlot(ctx context.Context, req *SlotRequest) (*Response, error) {
	uc.logger.Info("BlockSlots: slot=%s, action=%s, actor=%s", req.SlotID, req.Action, req.ActorID)

	// 1. Валидация входных данных
	if err := validateSlotRequest(req); err != nil {
		uc.logger.Warn("BlockSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Разбираем идентификатор слота
	ruleID, slotDate, err := domain.ParseSlotID(req.SlotID)
	if err != nil {
		uc.logger.Warn("BlockSlots: failed to parse slot id %q: %v", req.SlotID, err)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlotID, req.SlotID)
	}

	// 3. Правило из идентификатора должно существовать
	if _, err := uc.availabilityRepo.GetRuleByID(ctx, ruleID); err != nil {
		if errors.Is(err, availabilityStorage.ErrRuleNotFound) {
			uc.logger.Warn("BlockSlots: rule id=%d not found", ruleID)
			return nil, ErrRuleNotFound
		}
		uc.logger.Error("BlockSlots: failed to get rule id=%d: %v", ruleID, err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}

	// 4. Выполняем действие
	var affected int64
	switch req.Action {
	case ActionBlock:
		affected, err = uc.blockRepo.Upsert(ctx, &domain.AdminBlock{
			RuleID:    ruleID,
			SlotDate:  slotDate,
			Reason:    ptr.Deref(req.Reason, ""),
			BlockedBy: req.ActorID,
		})
	case ActionUnblock:
		affected, err = uc.blockRepo.Delete(ctx, ruleID, slotDate)
	}

	if err != nil {
		uc.logger.Error("BlockSlots: failed to %s slot %s: %v", req.Action, req.SlotID, err)
		return nil, fmt.Errorf("%w: failed to %s slot: %v", ErrInternal, req.Action, err)
	}

	uc.logger.Info("BlockSlots: %s slot=%s by actor=%s, affected=%d",
		req.Action, req.SlotID, req.ActorID, affected)

	return &Response{
		Action:        req.Action,
		AffectedSlots: affected,
	}, nil
}

// ExecuteBulk выполняет блокировку или разблокировку всех слотов дня
func (uc *UseCase) ExecuteBulk(ctx context.Context, req *BulkRequest) (*Response, error) {
	uc.logger.Info("BlockSlots: bulk date=%s, action=%s, actor=%s",
		req.Date.Format(domain.DateFormat), req.Action, req.ActorID)

	// 1. Валидация входных данных
	if err := validateBulkRequest(req); err != nil {
		uc.logger.Warn("BlockSlots: bulk validation failed: %v", err)
		return nil, err
	}

	// 2. Выполняем действие
	var affected int64
	var err error

	switch req.Action {
	case ActionBlock:
		affected, err = uc.bulkBlock(ctx, req)
	case ActionUnblock:
		affected, err = uc.blockRepo.DeleteByDate(ctx, req.Date)
	}

	if err != nil {
		uc.logger.Error("BlockSlots: bulk %s for %s failed: %v",
			req.Action, req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: bulk %s failed: %v", ErrInternal, req.Action, err)
	}

	uc.logger.Info("BlockSlots: bulk %s date=%s by actor=%s, affected=%d",
		req.Action, req.Date.Format(domain.DateFormat), req.ActorID, affected)

	return &Response{
		Action:        req.Action,
		AffectedSlots: affected,
	}, nil
}

// bulkBlock блокирует все слоты, которые активные правила порождают на дату
// Уже заблокированные слоты не считаются затронутыми
func (uc *UseCase) bulkBlock(ctx context.Context, req *BulkRequest) (int64, error) {
	rules, err := uc.availabilityRepo.GetActiveRules(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get availability rules: %v", err)
	}

	// На выходные правила не проецируются, день без слотов даст 0 затронутых
	if isWeekend(req.Date) {
		return 0, nil
	}

	var affected int64
	for _, rule := range rules {
		if !rule.ProjectsOnto(req.Date) {
			continue
		}

		n, err := uc.blockRepo.Upsert(ctx, &domain.AdminBlock{
			RuleID:    rule.ID,
			SlotDate:  req.Date,
			Reason:    ptr.Deref(req.Reason, ""),
			BlockedBy: req.ActorID,
		})
		if err != nil {
			return affected, fmt.Errorf("failed to block slot rule=%d: %v", rule.ID, err)
		}

		affected += n
	}

	return affected, nil
}

// isWeekend проверяет, что дата приходится на субботу или воскресенье
func isWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}
