package optional

import (
	"bytes"
	"encoding/json"
)

// Field distingue "campo ausente" de "campo enviado" (inclusive null
// explícito) em payloads de update parcial. Só campos Set são aplicados.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.null = true
		return nil
	}
	return json.Unmarshal(b, &f.value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

func (f Field[T]) IsSet() bool {
	return f.set
}

func (f Field[T]) IsNull() bool {
	return f.set && f.null
}

// Value devolve o valor e true quando o campo foi enviado com conteúdo.
func (f Field[T]) Value() (T, bool) {
	var zero T
	if !f.set || f.null {
		return zero, false
	}
	return f.value, true
}

func Of[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

func Null[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}
