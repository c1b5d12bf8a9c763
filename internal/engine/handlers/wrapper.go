package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/otricadziziusz/roguelike-tutorial/pkg/api"
)

var ErrMissingPayload = errors.New("payload is required")

// TypedHandlerFunc - это "чистый" хендлер, который работает с готовой структурой T
type TypedHandlerFunc[T any] func(ctx Context, payload T) (Result, error)

// EmptyHandlerFunc - хендлер, которому НЕ нужны данные (WAIT)
type EmptyHandlerFunc func(ctx Context) (Result, error)

// WithPayload берет "чистый" хендлер и превращает его в стандартный HandlerFunc.
// Она берет на себя приведение типа (или Unmarshal) и Validate.
func WithPayload[T any](handler TypedHandlerFunc[T]) HandlerFunc {
	return func(ctx Context, raw any) (Result, error) {
		// 1. Распаковка
		payload, err := decodePayload[T](raw)
		if err != nil {
			return Result{}, fmt.Errorf("invalid payload format: %w", err)
		}

		// 2. Автоматическая валидация
		// Проверяем, реализует ли структура T интерфейс Validator
		if v, ok := any(payload).(api.Validator); ok {
			if err := v.Validate(); err != nil {
				return Result{}, fmt.Errorf("validation failed: %w", err)
			}
		}

		// 3. Вызов чистой логики
		return handler(ctx, payload)
	}
}

// WithEmptyPayload - обертка для команд без данных (WAIT)
func WithEmptyPayload(handler EmptyHandlerFunc) HandlerFunc {
	return func(ctx Context, _ any) (Result, error) {
		// Мы просто игнорируем входящие данные, так как они не нужны логике.
		return handler(ctx)
	}
}

func decodePayload[T any](raw any) (T, error) {
	var payload T
	switch v := raw.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return payload, ErrMissingPayload
		}
		return *v, nil
	case json.RawMessage:
		err := json.Unmarshal(v, &payload)
		return payload, err
	case []byte:
		err := json.Unmarshal(v, &payload)
		return payload, err
	case nil:
		return payload, ErrMissingPayload
	default:
		return payload, fmt.Errorf("unexpected payload type %T", raw)
	}
}
