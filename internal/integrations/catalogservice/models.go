package catalogservice

// Service модель коучинговой услуги из каталога
// Read-model: сервис бронирования услуги не создаёт и не изменяет
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Format          string  `json:"format"` // virtual | in-person | both

	// Пакетное предложение: N сессий со скидкой в процентах
	HasPackage             bool    `json:"hasPackage"`
	PackageSessions        int     `json:"packageSessions"`
	PackageDiscountPercent float64 `json:"packageDiscountPercent"`
}

// SupportsFormat проверяет, что услуга доступна в запрошенном формате
func (s *Service) SupportsFormat(format string) bool {
	return s.Format == "both" || s.Format == format
}

// ErrorResponse модель ошибки от каталога услуг
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
