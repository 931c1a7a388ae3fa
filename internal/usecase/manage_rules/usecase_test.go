package manage_rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	availabilityStorage "github.com/coachpoint/CP-BookingService/internal/infra/storage/availability"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
	"github.com/coachpoint/CP-BookingService/pkg/types"
)

// --- Фейки зависимостей ---

// fakeRuleRepo in-memory хранилище правил доступности
type fakeRuleRepo struct {
	rules  map[int64]*domain.AvailabilityRule
	nextID int64
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{rules: map[int64]*domain.AvailabilityRule{}, nextID: 1}
}

func (f *fakeRuleRepo) CreateRule(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	created := *rule
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.rules[created.ID] = &created
	return &created, nil
}

func (f *fakeRuleRepo) SetActive(_ context.Context, id int64, isActive bool) error {
	rule, ok := f.rules[id]
	if !ok {
		return availabilityStorage.ErrRuleNotFound
	}
	rule.IsActive = isActive
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestUseCase() (*UseCase, *fakeRuleRepo) {
	repo := newFakeRuleRepo()
	return NewUseCase(repo, noopLogger{}), repo
}

// --- Тесты ---

func TestExecuteCreate_WeeklyRule(t *testing.T) {
	uc, repo := newTestUseCase()

	resp, err := uc.ExecuteCreate(context.Background(), &CreateRequest{
		Type:        string(domain.RuleWeekly),
		DayOfWeek:   ptr.Ptr(1),
		StartTime:   types.TimeString("10:00"),
		EndTime:     types.TimeString("11:00"),
		MaxBookings: 3,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.RuleWeekly), resp.Type)
	require.NotNil(t, resp.DayOfWeek)
	assert.Equal(t, 1, *resp.DayOfWeek)
	assert.Equal(t, 3, resp.MaxBookings)
	assert.True(t, resp.IsActive)

	stored := repo.rules[resp.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
}

func TestExecuteCreate_SpecificDateRule(t *testing.T) {
	uc, _ := newTestUseCase()
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	resp, err := uc.ExecuteCreate(context.Background(), &CreateRequest{
		Type:         string(domain.RuleSpecificDate),
		SpecificDate: &date,
		StartTime:    types.TimeString("14:00"),
		EndTime:      types.TimeString("15:00"),
		MaxBookings:  1,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.SpecificDate)
	assert.True(t, resp.SpecificDate.Equal(date))
	assert.Nil(t, resp.DayOfWeek)
}

func TestExecuteCreate_DefaultsMaxBookings(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.ExecuteCreate(context.Background(), &CreateRequest{
		Type:      string(domain.RuleWeekly),
		DayOfWeek: ptr.Ptr(5),
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("10:00"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMaxBookingsPerSlot, resp.MaxBookings)
}

func TestExecuteCreate_Validation(t *testing.T) {
	uc, _ := newTestUseCase()
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  *CreateRequest
	}{
		{
			name: "unknown type",
			req: &CreateRequest{
				Type:      "daily",
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "weekly without dayOfWeek",
			req: &CreateRequest{
				Type:      string(domain.RuleWeekly),
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "weekly with dayOfWeek out of range",
			req: &CreateRequest{
				Type:      string(domain.RuleWeekly),
				DayOfWeek: ptr.Ptr(7),
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "weekly with specificDate",
			req: &CreateRequest{
				Type:         string(domain.RuleWeekly),
				DayOfWeek:    ptr.Ptr(1),
				SpecificDate: &date,
				StartTime:    types.TimeString("10:00"),
				EndTime:      types.TimeString("11:00"),
			},
		},
		{
			name: "specific_date without date",
			req: &CreateRequest{
				Type:      string(domain.RuleSpecificDate),
				StartTime: types.TimeString("10:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "specific_date with dayOfWeek",
			req: &CreateRequest{
				Type:         string(domain.RuleSpecificDate),
				SpecificDate: &date,
				DayOfWeek:    ptr.Ptr(1),
				StartTime:    types.TimeString("10:00"),
				EndTime:      types.TimeString("11:00"),
			},
		},
		{
			name: "invalid startTime",
			req: &CreateRequest{
				Type:      string(domain.RuleWeekly),
				DayOfWeek: ptr.Ptr(1),
				StartTime: types.TimeString("25:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "startTime not before endTime",
			req: &CreateRequest{
				Type:      string(domain.RuleWeekly),
				DayOfWeek: ptr.Ptr(1),
				StartTime: types.TimeString("11:00"),
				EndTime:   types.TimeString("11:00"),
			},
		},
		{
			name: "negative maxBookings",
			req: &CreateRequest{
				Type:        string(domain.RuleWeekly),
				DayOfWeek:   ptr.Ptr(1),
				StartTime:   types.TimeString("10:00"),
				EndTime:     types.TimeString("11:00"),
				MaxBookings: -1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.ExecuteCreate(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecuteSetActive_DeactivatesRule(t *testing.T) {
	uc, repo := newTestUseCase()

	created, err := uc.ExecuteCreate(context.Background(), &CreateRequest{
		Type:      string(domain.RuleWeekly),
		DayOfWeek: ptr.Ptr(1),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	require.NoError(t, err)

	resp, err := uc.ExecuteSetActive(context.Background(), &SetActiveRequest{
		RuleID:   created.ID,
		IsActive: false,
	})

	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.False(t, repo.rules[created.ID].IsActive)
}

func TestExecuteSetActive_RuleNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.ExecuteSetActive(context.Background(), &SetActiveRequest{
		RuleID:   999,
		IsActive: false,
	})

	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestExecuteSetActive_InvalidRuleID(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.ExecuteSetActive(context.Background(), &SetActiveRequest{
		RuleID:   0,
		IsActive: true,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
