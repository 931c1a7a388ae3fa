package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/pkg/ptr"
)

func TestAvailabilityRule_ProjectsOnto_Weekly(t *testing.T) {
	// 2026-03-16 - понедельник
	monday := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	rule := &AvailabilityRule{
		Type:      RuleWeekly,
		DayOfWeek: ptr.Ptr(1), // Monday
	}

	assert.True(t, rule.ProjectsOnto(monday))
	assert.True(t, rule.ProjectsOnto(monday.AddDate(0, 0, 7)))
	assert.False(t, rule.ProjectsOnto(monday.AddDate(0, 0, 1)))

	// Weekly без дня недели не проецируется никуда
	broken := &AvailabilityRule{Type: RuleWeekly}
	assert.False(t, broken.ProjectsOnto(monday))
}

func TestAvailabilityRule_ProjectsOnto_SpecificDate(t *testing.T) {
	date := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	rule := &AvailabilityRule{
		Type:         RuleSpecificDate,
		SpecificDate: ptr.Ptr(date),
	}

	assert.True(t, rule.ProjectsOnto(date))
	// Совпадение по календарной дате, время суток не учитывается
	assert.True(t, rule.ProjectsOnto(date.Add(15*time.Hour)))
	assert.False(t, rule.ProjectsOnto(date.AddDate(0, 0, 1)))

	broken := &AvailabilityRule{Type: RuleSpecificDate}
	assert.False(t, broken.ProjectsOnto(date))
}

func TestFormatSlotID_ParseSlotID(t *testing.T) {
	date := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)

	id := FormatSlotID(7, date)
	assert.Equal(t, "7_2026-03-16", id)

	ruleID, parsed, err := ParseSlotID(id)
	require.NoError(t, err)
	assert.Equal(t, int64(7), ruleID)
	assert.Equal(t, date, parsed)
}

func TestParseSlotID_Invalid(t *testing.T) {
	for _, id := range []string{"", "7", "abc_2026-03-16", "0_2026-03-16", "-1_2026-03-16", "7_16.03.2026", "7_2026-13-40"} {
		_, _, err := ParseSlotID(id)
		assert.ErrorIs(t, err, ErrInvalidSlotID, "input %q", id)
	}
}

func TestSlotInstance_ID(t *testing.T) {
	s := &SlotInstance{
		RuleID: 3,
		Date:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "3_2026-04-01", s.ID())
}
