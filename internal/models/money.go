package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Money is a structured money value keyed by currency code,
// e.g. {"USD": 10.5, "RUB": 950}. The panel reports amounts this way
// and the shape is preserved as-is instead of being flattened.
type Money map[string]Decimal

// Scan implements the sql.Scanner interface
func (m *Money) Scan(src interface{}) error {
	var raw []byte
	switch src := src.(type) {
	case string:
		raw = []byte(src)
	case []byte:
		raw = src
	case nil:
		*m = nil
		return nil
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	return json.Unmarshal(raw, m)
}

// Value implements the driver.Valuer interface
func (m Money) Value() (value driver.Value, err error) {
	if m == nil {
		return nil, nil
	}

	return json.Marshal(m)
}

// Payload holds the opaque pass-through fields of an external record,
// kept verbatim for audit.
type Payload json.RawMessage

// Scan implements the sql.Scanner interface
func (p *Payload) Scan(src interface{}) error {
	switch src := src.(type) {
	case string:
		*p = Payload(src)
	case []byte:
		cp := make([]byte, len(src))
		copy(cp, src)
		*p = cp
	case nil:
		*p = nil
	default:
		return fmt.Errorf("type %T not supported by Scan", src)
	}

	return nil
}

// Value implements the driver.Valuer interface
func (p Payload) Value() (value driver.Value, err error) {
	if len(p) == 0 {
		return nil, nil
	}

	return []byte(p), nil
}

func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}

	return p, nil
}

func (p *Payload) UnmarshalJSON(data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	*p = cp
	return nil
}
