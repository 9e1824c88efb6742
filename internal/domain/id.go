package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an opaque, store-assigned identifier. Callers may rely on it being
// stable and unique; nothing else about its value is guaranteed.
type ID int64

// NilID is the zero ID. No stored entity ever carries it.
const NilID ID = 0

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// IsZero reports whether id is NilID.
func (id ID) IsZero() bool { return id == NilID }

// ParseID parses the decimal text form produced by ID.String.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return NilID, fmt.Errorf("parse id %q: %w", s, err)
	}
	if v <= 0 {
		return NilID, fmt.Errorf("parse id %q: must be positive", s)
	}
	return ID(v), nil
}

// MarshalJSON encodes ids as strings; 64-bit values do not survive JSON numbers
// in most clients.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON accepts both the string and the numeric form. Either must
// hold a positive value.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n int64
		if nerr := json.Unmarshal(b, &n); nerr != nil {
			return fmt.Errorf("id: %w", err)
		}
		if n <= 0 {
			return fmt.Errorf("parse id %d: must be positive", n)
		}
		*id = ID(n)
		return nil
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Optional holds a value that may be absent. It replaces nullable fields so
// that callers have to handle the "unset" case explicitly.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an empty Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// FromPtr converts a nil-able pointer into an Optional.
func FromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether a value is present.
func (o Optional[T]) IsSet() bool { return o.set }

// OrZero returns the value, or the zero value of T when unset.
func (o Optional[T]) OrZero() T { return o.value }

// Ptr returns a pointer to a copy of the value, or nil when unset.
func (o Optional[T]) Ptr() *T {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
