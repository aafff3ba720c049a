package models

import (
	"github.com/shopspring/decimal"
)

// Decimal wraps decimal.Decimal so money values coming out of the panel
// serialize as bare JSON numbers (10 instead of "10").
//
// WARNING: javascript clients unmarshal JSON numbers as IEEE 754 doubles,
// so precision beyond that is lost on their side.
type Decimal struct {
	decimal.Decimal
}

func NewDecimalFromExternal(d decimal.Decimal) Decimal {
	return Decimal{d}
}

func NewDecimal(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{d}, nil
}

func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}
