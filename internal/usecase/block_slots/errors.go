package block_slots

import "errors"

var (
	// ErrInvalidSlotID возвращается при некорректном идентификаторе слота
	ErrInvalidSlotID = errors.New("block_slots: invalid slot id")

	// ErrRuleNotFound возвращается, когда правило из идентификатора слота не существует
	ErrRuleNotFound = errors.New("block_slots: availability rule not found")

	// ErrInvalidAction возвращается при неизвестном действии
	ErrInvalidAction = errors.New("block_slots: invalid action")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("block_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_slots: internal error")
)
