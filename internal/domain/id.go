package domain

import (
	"fmt"
	"strconv"
)

// EntityID - упакованный идентификатор (Kind + Floor + Index)
type EntityID uint64

// NilEntityID - "нет сущности".
const NilEntityID EntityID = 0

// Конфигурация битов
const (
	bitsIndex = 40
	bitsFloor = 16
	bitsKind  = 8

	// Сдвиги
	shiftFloor = bitsIndex
	shiftKind  = bitsIndex + bitsFloor

	// Маски (для извлечения значений)
	maskIndex = (1 << bitsIndex) - 1 // 0x000000FFFFFFFFFF
	maskFloor = (1 << bitsFloor) - 1 // 0xFFFF
	maskKind  = (1 << bitsKind) - 1  // 0xFF
)

// --- КОНСТРУКТОР ---

// PackEntityID создает ID из компонентов. Диапазоны не проверяются,
// лишние старшие биты отбрасываются.
func PackEntityID(kind EntityKind, floor int16, index uint64) EntityID {
	id := index & maskIndex
	id |= (uint64(uint16(floor)) & maskFloor) << shiftFloor
	id |= (uint64(kind) & maskKind) << shiftKind
	return EntityID(id)
}

// --- МЕТОДЫ ДОСТУПА ---

func (id EntityID) Kind() EntityKind {
	return EntityKind((id >> shiftKind) & maskKind)
}

func (id EntityID) Floor() int16 {
	return int16(uint16((id >> shiftFloor) & maskFloor))
}

func (id EntityID) Index() uint64 {
	return uint64(id & maskIndex)
}

func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// --- СЕРИАЛИЗАЦИЯ ---

// MarshalJSON сериализует ID в строку, так как JS теряет точность для больших int64
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// ParseEntityID разбирает десятичную запись ID (как в JSON).
func ParseEntityID(s string) (EntityID, error) {
	val, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NilEntityID, fmt.Errorf("entity id %q: %w", s, err)
	}
	return EntityID(val), nil
}

// UnmarshalJSON парсит строку или число из JSON
func (id *EntityID) UnmarshalJSON(data []byte) error {
	if len(data) > 1 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	val, err := ParseEntityID(string(data))
	if err != nil {
		return err
	}
	*id = val
	return nil
}

// String для логов: [Kind:Floor:Idx]
func (id EntityID) String() string {
	return fmt.Sprintf("[%s:%d:%d]", id.Kind(), id.Floor(), id.Index())
}
