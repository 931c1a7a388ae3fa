package update_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrInvalidTransition возвращается при недопустимом переходе статуса
	ErrInvalidTransition = errors.New("update_booking: invalid status transition")

	// ErrDistanceRequired возвращается при попытке подтвердить бронирование
	// с выездом тренера без внесённой дистанции
	ErrDistanceRequired = errors.New("update_booking: travel distance must be set before confirmation")

	// ErrDistanceNotApplicable возвращается при попытке внести дистанцию
	// для режима без выезда тренера
	ErrDistanceNotApplicable = errors.New("update_booking: travel distance is only applicable to coach_travels")

	// ErrTravelTooFar возвращается, когда дистанция выезда превышает лимит
	ErrTravelTooFar = errors.New("update_booking: travel distance exceeds the limit")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
