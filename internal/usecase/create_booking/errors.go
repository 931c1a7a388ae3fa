package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrFormatNotSupported возвращается, когда услуга не проводится в запрошенном формате
	ErrFormatNotSupported = errors.New("create_booking: service does not support this format")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата за пределами горизонта бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrWeekendNotBookable возвращается при попытке бронирования на выходной день
	ErrWeekendNotBookable = errors.New("create_booking: weekends are not bookable")

	// ErrInvalidTimeSlot возвращается, когда в расписании нет слота на указанные дату и время
	ErrInvalidTimeSlot = errors.New("create_booking: no slot at this date and time")

	// ErrSlotBlocked возвращается, когда слот закрыт администратором
	ErrSlotBlocked = errors.New("create_booking: slot is blocked")

	// ErrSlotTaken возвращается, когда слот уже занят другим бронированием
	ErrSlotTaken = errors.New("create_booking: slot is already taken")

	// ErrTravelTooFar возвращается, когда дистанция выезда превышает лимит
	ErrTravelTooFar = errors.New("create_booking: travel distance exceeds the limit")

	// ErrTransient возвращается, когда транзакция не прошла по временной причине
	// (конфликт сериализации после повтора, таймаут) и запрос можно повторить
	ErrTransient = errors.New("create_booking: transient failure, please retry")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
