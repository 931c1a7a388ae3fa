package create_booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// generateBookingNumber генерирует человекочитаемый номер бронирования
// вида BK-3F9A21C4. Уникальность гарантирует ограничение в БД, а не генератор
func generateBookingNumber() string {
	id := uuid.New()
	fragment := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("BK-%s", fragment)
}
