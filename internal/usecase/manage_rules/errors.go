package manage_rules

import "errors"

var (
	// ErrRuleNotFound возвращается, когда правило не существует
	ErrRuleNotFound = errors.New("manage_rules: availability rule not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("manage_rules: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("manage_rules: internal error")
)
