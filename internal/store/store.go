package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// FieldKind — скалярный тип поля записи.
type FieldKind int

const (
	FieldString FieldKind = iota
	FieldInt
	FieldFloat
)

// Schema описывает один вид сущности: имя вида (пространство ключей)
// и набор полей со скалярными типами.
type Schema struct {
	Kind   string
	Fields map[string]FieldKind
}

// Fields — значения полей записи. Допустимые значения: string, int64, float64.
type Fields map[string]any

// Record — запись хранилища: системный первичный ключ плюс поля.
// Ключ назначается при создании и никогда не меняется.
type Record struct {
	ID     string
	Fields Fields
}

// Store — хранилище записей одного вида сущности.
// Реализации (Redis и локальная) должны быть безопасны при конкурентном
// доступе; вызывающий код не знает и не проверяет, какой бэкенд активен.
type Store interface {
	// Create назначает новый ключ, сохраняет запись и возвращает её вместе с ключом.
	Create(ctx context.Context, fields Fields) (*Record, error)

	// Get возвращает запись по ключу либо e.ErrRecordNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// ListIDs возвращает все известные ключи вида.
	ListIDs(ctx context.Context) ([]string, error)

	// ListAll возвращает все записи вида. Снимок согласован в рамках вызова,
	// но не атомарен относительно конкурентных писателей.
	ListAll(ctx context.Context) ([]*Record, error)

	// FindBy возвращает записи с точным совпадением значения поля.
	// Отсутствие совпадений — пустой срез, не ошибка.
	FindBy(ctx context.Context, field string, value any) ([]*Record, error)

	// Update полностью заменяет поля записи либо возвращает e.ErrRecordNotFound.
	Update(ctx context.Context, id string, fields Fields) error

	// Delete удаляет запись либо возвращает e.ErrRecordNotFound.
	// Ключ удалённой записи повторно не выдаётся.
	Delete(ctx context.Context, id string) error
}

// newID генерирует 128-битный случайный ключ в hex-представлении (32 символа).
func newID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// normalize проверяет поля на соответствие схеме и приводит значения
// к каноническим скалярам (string, int64, float64).
// Неизвестные поля — ошибка, отсутствующие получают нулевое значение.
func (s *Schema) normalize(fields Fields) (Fields, error) {
	for name := range fields {
		if _, ok := s.Fields[name]; !ok {
			return nil, fmt.Errorf("unknown field %q for kind %q", name, s.Kind)
		}
	}

	out := make(Fields, len(s.Fields))
	for name, kind := range s.Fields {
		raw, ok := fields[name]
		if !ok {
			out[name] = zeroValue(kind)
			continue
		}

		v, err := coerce(kind, raw)
		if err != nil {
			return nil, fmt.Errorf("field %q of kind %q: %w", name, s.Kind, err)
		}
		out[name] = v
	}

	return out, nil
}

func zeroValue(kind FieldKind) any {
	switch kind {
	case FieldInt:
		return int64(0)
	case FieldFloat:
		return float64(0)
	default:
		return ""
	}
}

func coerce(kind FieldKind, raw any) (any, error) {
	switch kind {
	case FieldString:
		v, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", raw)
		}
		return v, nil
	case FieldInt:
		switch v := raw.(type) {
		case int:
			return int64(v), nil
		case int32:
			return int64(v), nil
		case int64:
			return v, nil
		}
		return nil, fmt.Errorf("expected integer, got %T", raw)
	case FieldFloat:
		switch v := raw.(type) {
		case float64:
			return v, nil
		case float32:
			return float64(v), nil
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		}
		return nil, fmt.Errorf("expected float, got %T", raw)
	}

	return nil, fmt.Errorf("unsupported field kind %d", kind)
}

// encodeValue переводит каноническое значение поля в строку для Redis-хэша.
func encodeValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// decodeValue восстанавливает скалярный тип поля из строки по схеме.
func decodeValue(kind FieldKind, s string) (any, error) {
	switch kind {
	case FieldString:
		return s, nil
	case FieldInt:
		return strconv.ParseInt(s, 10, 64)
	case FieldFloat:
		return strconv.ParseFloat(s, 64)
	}

	return nil, fmt.Errorf("unsupported field kind %d", kind)
}

// clone возвращает копию полей, чтобы записи хранилища
// не были доступны для внешней модификации.
func (f Fields) clone() Fields {
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
