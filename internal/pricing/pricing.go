// Package pricing расчёт стоимости сессии и выезда тренера
// Все суммы округляются до двух знаков; итог всегда пересчитывается
// из операндов и никогда не редактируется напрямую
package pricing

import (
	"errors"
	"math"

	"github.com/coachpoint/CP-BookingService/internal/domain"
	"github.com/coachpoint/CP-BookingService/internal/integrations/catalogservice"
)

var (
	// ErrDistanceOutOfRange возвращается при дистанции вне допустимого диапазона
	ErrDistanceOutOfRange = errors.New("pricing: travel distance out of range")
)

// Params параметры расчёта travel fee
type Params struct {
	TravelRatePerKm     float64
	MaxTravelDistanceKm float64
}

// DefaultParams возвращает канонические параметры (6.50/км, максимум 100 км)
func DefaultParams() Params {
	return Params{
		TravelRatePerKm:     domain.DefaultTravelRatePerKm,
		MaxTravelDistanceKm: domain.DefaultMaxTravelDistanceKm,
	}
}

// SessionAmount вычисляет стоимость сессии (или пакета сессий)
// package: price * sessions * (1 - discount/100)
// Если у услуги нет пакетного предложения, вариант package считается как single
func SessionAmount(service *catalogservice.Service, option domain.PackageOption) float64 {
	if option == domain.PackageOptionPackage && service.HasPackage {
		gross := service.Price * float64(service.PackageSessions)
		return Round2(gross * (1 - service.PackageDiscountPercent/100))
	}
	return Round2(service.Price)
}

// TravelAmount вычисляет стоимость выезда тренера: дистанция * тариф
func TravelAmount(distanceKm float64, p Params) (float64, error) {
	if distanceKm <= 0 || distanceKm > p.MaxTravelDistanceKm {
		return 0, ErrDistanceOutOfRange
	}
	return Round2(distanceKm * p.TravelRatePerKm), nil
}

// Total вычисляет итоговую сумму бронирования
func Total(sessionAmount, travelAmount float64) float64 {
	return Round2(sessionAmount + travelAmount)
}

// LocationFor возвращает описание места встречи для режима
// Для coach_travels используется адрес клиента; для остальных режимов
// адрес не собирается и подставляется фиксированное описание
func LocationFor(mode domain.MeetingMode, clientAddress string) string {
	switch mode {
	case domain.MeetingCoachTravels:
		return clientAddress
	case domain.MeetingClientTravels:
		return domain.LocationClientTravels
	default:
		return domain.LocationVirtual
	}
}

// Round2 округляет сумму до двух знаков после запятой
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
