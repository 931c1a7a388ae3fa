package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
)

func TestSessionAmount_Single(t *testing.T) {
	service := &catalogservice.Service{Price: 120.00}

	assert.Equal(t, 120.00, SessionAmount(service, domain.PackageOptionSingle))
}

func TestSessionAmount_Package(t *testing.T) {
	// 300 * 8 * (1 - 10/100) = 2160.00
	service := &catalogservice.Service{
		Price:                  300.00,
		HasPackage:             true,
		PackageSessions:        8,
		PackageDiscountPercent: 10,
	}

	assert.Equal(t, 2160.00, SessionAmount(service, domain.PackageOptionPackage))
}

func TestSessionAmount_PackageFallsBackToSingle(t *testing.T) {
	// Услуга без пакетного предложения: вариант package считается как single
	service := &catalogservice.Service{Price: 150.00, HasPackage: false}

	assert.Equal(t, 150.00, SessionAmount(service, domain.PackageOptionPackage))
}

func TestSessionAmount_RoundsToTwoDecimals(t *testing.T) {
	// 99.99 * 3 * (1 - 15/100) = 254.9745 -> 254.97
	service := &catalogservice.Service{
		Price:                  99.99,
		HasPackage:             true,
		PackageSessions:        3,
		PackageDiscountPercent: 15,
	}

	assert.Equal(t, 254.97, SessionAmount(service, domain.PackageOptionPackage))
}

func TestTravelAmount(t *testing.T) {
	amount, err := TravelAmount(15.5, DefaultParams())
	require.NoError(t, err)

	// 15.5 * 6.50 = 100.75
	assert.Equal(t, 100.75, amount)
}

func TestTravelAmount_AtMaxDistance(t *testing.T) {
	amount, err := TravelAmount(100, DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 650.00, amount)
}

func TestTravelAmount_RejectsOutOfRange(t *testing.T) {
	for _, distance := range []float64{0, -3, 100.1, 500} {
		_, err := TravelAmount(distance, DefaultParams())
		assert.ErrorIs(t, err, ErrDistanceOutOfRange, "distance %.1f", distance)
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, 220.75, Total(120.00, 100.75))
	assert.Equal(t, 120.00, Total(120.00, 0))
}

func TestLocationFor(t *testing.T) {
	assert.Equal(t, "12 Elm Street", LocationFor(domain.MeetingCoachTravels, "12 Elm Street"))
	assert.Equal(t, domain.LocationClientTravels, LocationFor(domain.MeetingClientTravels, ""))
	assert.Equal(t, domain.LocationVirtual, LocationFor(domain.MeetingVirtual, ""))
}
