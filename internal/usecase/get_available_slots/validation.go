package get_available_slots

import "fmt"

// validateRequest валидирует входные данные запроса
// Отсутствие услуги допустимо - это запрос расписания по всем услугам
func validateRequest(req *Request) error {
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	return nil
}
