package oapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errDecimal = errors.New("decimal must be a string or a number")

// Decimal is a fixed-point amount such as a price. Clients may send it as a
// JSON string ("5.00") or a number (5.00); a number keeps its literal digits.
type Decimal string

func (d *Decimal) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decimal error: %w", err)
		}

		*d = Decimal(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("%w: %s", errDecimal, b)
	}

	*d = Decimal(n.String())

	return nil
}
