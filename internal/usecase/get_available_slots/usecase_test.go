package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetNonCancelledInRange(_ context.Context, _ *int64, _, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeAvailabilityRepo struct {
	rules []*domain.AvailabilityRule
}

func (f *fakeAvailabilityRepo) GetActiveRules(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return f.rules, nil
}

type fakeBlockRepo struct {
	blocks []*domain.AdminBlock
}

func (f *fakeBlockRepo) GetByDateRange(_ context.Context, _, _ time.Time) ([]*domain.AdminBlock, error) {
	return f.blocks, nil
}

type fakeCatalogClient struct {
	service *catalogservice.Service
	err     error
}

func (f *fakeCatalogClient) GetService(_ context.Context, _ int64) (*catalogservice.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase(
	now time.Time,
	rules []*domain.AvailabilityRule,
	bookings []*domain.Booking,
	blocks []*domain.AdminBlock,
) *UseCase {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: bookings},
		&fakeAvailabilityRepo{rules: rules},
		&fakeBlockRepo{blocks: blocks},
		&fakeCatalogClient{service: &catalogservice.Service{ID: 1, Name: "Career coaching", DurationMinutes: 60}},
		domain.BookingHorizonDays,
		noopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func weeklyRule(id int64, dayOfWeek int, startTime types.TimeString) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ID:          id,
		Type:        domain.RuleWeekly,
		DayOfWeek:   ptr.Ptr(dayOfWeek),
		StartTime:   startTime,
		EndTime:     "18:00",
		MaxBookings: 1,
		IsActive:    true,
	}
}

func serviceRequest(id int64) *Request {
	return &Request{ServiceID: ptr.Ptr(id)}
}

func allSlots(resp *Response) []Slot {
	slots := make([]Slot, 0)
	for _, day := range resp.Days {
		slots = append(slots, day.Slots...)
	}
	return slots
}

// --- Тесты ---

func TestExecute_WeeklyProjection(t *testing.T) {
	// Понедельник, 2026-03-16, 08:00
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	// Правило на понедельник: на горизонте 14 дней ровно два понедельника
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	require.NotNil(t, resp.ServiceID)
	assert.Equal(t, int64(1), *resp.ServiceID)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, domain.BookingHorizonDays, resp.HorizonDays)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.Equal(t, "1_2026-03-16", slots[0].ID)
	assert.Equal(t, "1_2026-03-23", slots[1].ID)
	for _, s := range slots {
		assert.True(t, s.IsAvailable)
		assert.False(t, s.IsBlocked)
	}
}

func TestExecute_NoServiceListsAllRules(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, nil, nil)
	// Без услуги каталог не опрашивается вовсе
	uc.catalogClient = &fakeCatalogClient{err: catalogservice.ErrServiceNotFound}

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Nil(t, resp.ServiceID)
	assert.Equal(t, 0, resp.DurationMinutes)
	assert.Len(t, allSlots(resp), 2)
}

func TestExecute_WeekendsExcluded(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	// Правило указывает на субботу - слоты не порождаются вовсе
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 6, "10:00")}, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)
	assert.Empty(t, resp.Days)
}

func TestExecute_PastSlotsOfTodayDropped(t *testing.T) {
	// Понедельник, 12:00: утренний слот уже прошёл, дневной ещё впереди
	now := time.Date(2026, 3, 16, 12, 0, 0, 0, time.UTC)

	rules := []*domain.AvailabilityRule{
		weeklyRule(1, 1, "10:00"),
		weeklyRule(2, 1, "15:00"),
	}
	uc := newTestUseCase(now, rules, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Days)
	today := resp.Days[0]
	require.True(t, today.Date.Equal(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)))
	require.Len(t, today.Slots, 1)
	assert.Equal(t, types.TimeString("15:00"), today.Slots[0].Time)
}

func TestExecute_SlotStartingRightNowDropped(t *testing.T) {
	// Ровно 10:00 - слот на 10:00 уже недоступен
	now := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)

	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 1)
	assert.Equal(t, "1_2026-03-23", slots[0].ID)
}

func TestExecute_CapacityFullMarksBlocked(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	// Вместимость 1 исчерпана бронированием другой услуги:
	// слот и недоступен, и помечен занятым
	bookings := []*domain.Booking{
		{
			ServiceID:   42,
			BookingDate: monday,
			StartTime:   "10:00",
			Status:      domain.StatusPending,
		},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, bookings, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].IsAvailable)
	assert.True(t, slots[0].IsBlocked)
	assert.True(t, slots[1].IsAvailable)
	assert.False(t, slots[1].IsBlocked)
}

func TestExecute_SameServiceBookingHidesSlotDespiteCapacity(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	rule := weeklyRule(1, 1, "10:00")
	rule.MaxBookings = 2

	// Вместимость ещё не исчерпана, но эта услуга слот уже заняла:
	// повторное бронирование гарантированно упрётся в конфликт
	bookings := []*domain.Booking{
		{
			ServiceID:   1,
			BookingDate: monday,
			StartTime:   "10:00",
			Status:      domain.StatusPending,
		},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{rule}, bookings, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].IsAvailable)
	assert.False(t, slots[0].IsBlocked)
	assert.True(t, slots[1].IsAvailable)
}

func TestExecute_OtherServiceBookingWithCapacityLeft(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	rule := weeklyRule(1, 1, "10:00")
	rule.MaxBookings = 2

	// Чужая услуга заняла одно из двух мест - для этой услуги слот свободен
	bookings := []*domain.Booking{
		{
			ServiceID:   42,
			BookingDate: monday,
			StartTime:   "10:00",
			Status:      domain.StatusPending,
		},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{rule}, bookings, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[0].IsBlocked)
}

func TestExecute_CancelledBookingFreesSlot(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	bookings := []*domain.Booking{
		{ServiceID: 1, BookingDate: monday, StartTime: "10:00", Status: domain.StatusCancelled},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, bookings, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsAvailable)
	assert.False(t, slots[0].IsBlocked)
}

func TestExecute_BookingMatchesByExactDateAndTime(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	// Бронирование на другое время того же дня слот не занимает
	bookings := []*domain.Booking{
		{ServiceID: 1, BookingDate: monday, StartTime: "11:00", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, bookings, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].IsAvailable)
}

func TestExecute_BlockedSlot(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	blocks := []*domain.AdminBlock{
		{RuleID: 1, SlotDate: monday, Reason: "Coach unavailable"},
	}
	uc := newTestUseCase(now, []*domain.AvailabilityRule{weeklyRule(1, 1, "10:00")}, nil, blocks)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 2)
	assert.False(t, slots[0].IsAvailable)
	assert.True(t, slots[0].IsBlocked)
	assert.True(t, slots[1].IsAvailable)
	assert.False(t, slots[1].IsBlocked)
}

func TestExecute_SpecificDateRule(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 3, 18, 0, 0, 0, 0, time.UTC)

	rules := []*domain.AvailabilityRule{
		{
			ID:           5,
			Type:         domain.RuleSpecificDate,
			SpecificDate: ptr.Ptr(wednesday),
			StartTime:    "09:00",
			EndTime:      "10:00",
			MaxBookings:  1,
			IsActive:     true,
		},
	}
	uc := newTestUseCase(now, rules, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	slots := allSlots(resp)
	require.Len(t, slots, 1)
	assert.Equal(t, "5_2026-03-18", slots[0].ID)
}

func TestExecute_SlotsSortedWithinDay(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	// Правила нарочно в обратном порядке по времени
	rules := []*domain.AvailabilityRule{
		weeklyRule(1, 1, "15:00"),
		weeklyRule(2, 1, "10:00"),
		weeklyRule(3, 1, "12:00"),
	}
	uc := newTestUseCase(now, rules, nil, nil)

	resp, err := uc.Execute(context.Background(), serviceRequest(1))
	require.NoError(t, err)

	require.NotEmpty(t, resp.Days)
	slots := resp.Days[0].Slots
	require.Len(t, slots, 3)
	assert.Equal(t, types.TimeString("10:00"), slots[0].Time)
	assert.Equal(t, types.TimeString("12:00"), slots[1].Time)
	assert.Equal(t, types.TimeString("15:00"), slots[2].Time)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)

	uc := newTestUseCase(now, nil, nil, nil)
	uc.catalogClient = &fakeCatalogClient{err: catalogservice.ErrServiceNotFound}

	_, err := uc.Execute(context.Background(), serviceRequest(99))
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_InvalidServiceID(t *testing.T) {
	now := time.Date(2026, 3, 16, 8, 0, 0, 0, time.UTC)
	uc := newTestUseCase(now, nil, nil, nil)

	_, err := uc.Execute(context.Background(), serviceRequest(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
