package internal

import "encoding/json"

// Patch is a tri-state update field. A request body that omits the field
// leaves Present false (leave the stored value unchanged); an explicit JSON
// null sets Present and Null (clear the stored value); anything else sets
// Present and Value (replace the stored value). Collapsing "absent" into
// "null" would make a no-op update indistinguishable from a clear, so the
// three states are kept apart end to end.
type Patch[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// PatchValue builds a field that replaces the stored value.
func PatchValue[T any](value T) Patch[T] {
	return Patch[T]{Present: true, Value: value}
}

// PatchNull builds a field that clears the stored value.
func PatchNull[T any]() Patch[T] {
	return Patch[T]{Present: true, Null: true}
}

// IsValue reports whether the field carries a concrete replacement value.
func (p Patch[T]) IsValue() bool {
	return p.Present && !p.Null
}

// IsNull reports whether the field explicitly clears the target.
func (p Patch[T]) IsNull() bool {
	return p.Present && p.Null
}

// Ptr returns the carried value as a pointer, nil when absent or null.
func (p Patch[T]) Ptr() *T {
	if !p.IsValue() {
		return nil
	}
	value := p.Value
	return &value
}

func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Present = true
	if string(data) == "null" {
		p.Null = true
		return nil
	}
	return json.Unmarshal(data, &p.Value)
}

func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.Present || p.Null {
		return []byte("null"), nil
	}
	return json.Marshal(p.Value)
}
