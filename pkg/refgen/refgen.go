// Package refgen генератор публичных номеров бронирований
package refgen

import (
	"encoding/base32"

	"github.com/google/uuid"
)

// Length длина публичного номера бронирования
const Length = 8

// base32 без padding: алфавит A-Z2-7, короткие читаемые коды
// без символов, которые легко перепутать на слух (0/O, 1/I отсутствуют)
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generate возвращает короткий публичный номер бронирования: 8 заглавных
// буквенно-цифровых символов, полученных из случайного UUID
//
// 40 бит энтропии на токен недостаточно для глобальной уникальности,
// поэтому вставка в БД выполняется с повтором при конфликте уникального
// индекса reference_id (см. usecase create_booking)
func Generate() string {
	id := uuid.New()
	return encoding.EncodeToString(id[:])[:Length]
}
