package optional

import (
	"encoding/json"
	"testing"
)

type payload struct {
	Name  Field[string] `json:"name"`
	Count Field[int]    `json:"count"`
}

func TestFieldUnmarshal(t *testing.T) {
	t.Run("absent field stays unset", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatal(err)
		}
		if p.Name.IsSet() || p.Count.IsSet() {
			t.Error("absent fields must not be set")
		}
	})

	t.Run("explicit null is set and null", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name": null}`), &p); err != nil {
			t.Fatal(err)
		}
		if !p.Name.IsSet() || !p.Name.IsNull() {
			t.Error("null field must be set and null")
		}
		if _, ok := p.Name.Value(); ok {
			t.Error("null field must not yield a value")
		}
	})

	t.Run("value is set and non-null", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name": "x", "count": 3}`), &p); err != nil {
			t.Fatal(err)
		}
		if v, ok := p.Name.Value(); !ok || v != "x" {
			t.Errorf("name = %q, %v", v, ok)
		}
		if v, ok := p.Count.Value(); !ok || v != 3 {
			t.Errorf("count = %d, %v", v, ok)
		}
	})

	t.Run("zero value is still set", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"count": 0}`), &p); err != nil {
			t.Fatal(err)
		}
		if v, ok := p.Count.Value(); !ok || v != 0 {
			t.Errorf("count = %d, %v; zero must count as sent", v, ok)
		}
	})
}

func TestConstructors(t *testing.T) {
	f := Of(42)
	if v, ok := f.Value(); !ok || v != 42 {
		t.Errorf("Of(42).Value() = %d, %v", v, ok)
	}

	n := Null[int]()
	if !n.IsNull() {
		t.Error("Null() must be null")
	}
	if _, ok := n.Value(); ok {
		t.Error("Null().Value() must not yield a value")
	}
}
