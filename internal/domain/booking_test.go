package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coachpoint/CP-BookingService/pkg/ptr"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusRescheduled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusRescheduled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusRescheduled, StatusCancelled, true},
		{StatusRescheduled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		b := &Booking{Status: tt.from}
		assert.Equal(t, tt.allowed, b.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestBooking_HoldsSlot(t *testing.T) {
	for _, status := range NonCancelledStatuses {
		b := &Booking{Status: status}
		assert.True(t, b.HoldsSlot(), "status %s", status)
	}

	b := &Booking{Status: StatusCancelled}
	assert.False(t, b.HoldsSlot())
}

func TestBooking_CanBeCancelled(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusConfirmed}).CanBeCancelled())
	assert.True(t, (&Booking{Status: StatusRescheduled}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, (&Booking{Status: StatusCancelled}).CanBeCancelled())
}

func TestBooking_NeedsTravelDistance(t *testing.T) {
	b := &Booking{MeetingMode: MeetingCoachTravels}
	assert.True(t, b.NeedsTravelDistance())

	b.TravelDistanceKm = ptr.Ptr(12.5)
	assert.False(t, b.NeedsTravelDistance())

	assert.False(t, (&Booking{MeetingMode: MeetingVirtual}).NeedsTravelDistance())
	assert.False(t, (&Booking{MeetingMode: MeetingClientTravels}).NeedsTravelDistance())
}

func TestMeetingMode(t *testing.T) {
	assert.True(t, MeetingVirtual.IsValid())
	assert.True(t, MeetingClientTravels.IsValid())
	assert.True(t, MeetingCoachTravels.IsValid())
	assert.False(t, MeetingMode("onsite").IsValid())

	assert.True(t, MeetingCoachTravels.RequiresAddress())
	assert.False(t, MeetingVirtual.RequiresAddress())
}

func TestParseBookingStatus(t *testing.T) {
	status, ok := ParseBookingStatus("CONFIRMED")
	assert.True(t, ok)
	assert.Equal(t, StatusConfirmed, status)

	_, ok = ParseBookingStatus("confirmed")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("UNKNOWN")
	assert.False(t, ok)
}
