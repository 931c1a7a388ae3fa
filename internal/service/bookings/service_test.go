package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	bookingRepo "github.com/coachpoint/CP-BookingService/internal/infra/storage/booking"
	"github.com/coachpoint/CP-BookingService/internal/service/bookings/models"
	"github.com/coachpoint/CP-BookingService/pkg/ptr"
)

// --- Фейки зависимостей ---

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{}}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetByServiceWithFilter(_ context.Context, filter domain.ServiceBookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if filter.ServiceID != nil && b.ServiceID != *filter.ServiceID {
			continue
		}
		if !filter.IncludeCancelled && b.Status == domain.StatusCancelled {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	now := time.Now()
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &now
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testBooking(id int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:            id,
		BookingNumber: "BK-3F9A21C4",
		ServiceID:     1,
		ClientName:    "Anna Petrova",
		BookingDate:   time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		MeetingMode:   domain.MeetingVirtual,
		Status:        status,
	}
}

// --- Тесты ---

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeBookingRepo(testBooking(1, domain.StatusPending)), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "2026-03-16", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)

	_, err = svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel(t *testing.T) {
	repo := newFakeBookingRepo(testBooking(1, domain.StatusConfirmed))
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "Client asked to cancel",
	})
	require.NoError(t, err)

	cancelled := repo.bookings[1]
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "Client asked to cancel", *cancelled.CancellationReason)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestCancel_TerminalStatuses(t *testing.T) {
	repo := newFakeBookingRepo(
		testBooking(1, domain.StatusCompleted),
		testBooking(2, domain.StatusCancelled),
	)
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)

	// Повторная отмена уже отменённого тоже отклоняется
	err = svc.Cancel(context.Background(), 2, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	err := svc.Cancel(context.Background(), 9, &models.CancelBookingRequest{})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetServiceBookings(t *testing.T) {
	first := testBooking(1, domain.StatusConfirmed)
	second := testBooking(2, domain.StatusCancelled)
	third := testBooking(3, domain.StatusPending)
	third.ServiceID = 2

	svc := NewService(newFakeBookingRepo(first, second, third), noopLogger{})

	// Отменённые по умолчанию скрыты
	resp, err := svc.GetServiceBookings(context.Background(), &models.GetServiceBookingsRequest{
		ServiceID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(1), resp.Bookings[0].ID)

	// С отменёнными
	resp, err = svc.GetServiceBookings(context.Background(), &models.GetServiceBookingsRequest{
		ServiceID:        ptr.Ptr(int64(1)),
		IncludeCancelled: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	// Неизвестный статус в фильтре
	_, err = svc.GetServiceBookings(context.Background(), &models.GetServiceBookingsRequest{
		Status: ptr.Ptr("SHIPPED"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
