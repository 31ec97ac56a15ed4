/*
Package amount implements unsigned 128 bit token quantities.

Quantities are persisted as their decimal string representation. All
arithmetic is checked: an addition that does not fit into 128 bits fails with
errors.ErrOverflow and a subtraction below zero fails with
errors.ErrInsufficientAmount.
*/
package amount

import (
	"encoding/json"
	"strings"

	"github.com/holiman/uint256"
	"github.com/iov-one/tokenweave/errors"
)

// Bits is the width of every quantity.
const Bits = 128

// Max is the greatest representable quantity, 2^128-1.
var Max = func() Amount {
	var v uint256.Int
	v.Lsh(uint256.NewInt(1), Bits)
	v.SubUint64(&v, 1)
	return Amount{v: v}
}()

// Zero is the zero quantity.
var Zero = Amount{}

// Amount is an unsigned 128 bit quantity. The zero value is a valid zero
// amount.
type Amount struct {
	v uint256.Int
}

// New returns an amount of given value.
func New(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// Parse decodes a decimal representation. An empty string is a zero amount.
func Parse(s string) (Amount, error) {
	if s == "" {
		return Zero, nil
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return Zero, errors.Wrapf(errors.ErrAmount, "signed quantity %q", s)
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Zero, errors.Wrapf(errors.ErrAmount, "quantity %q: %s", s, err)
	}
	if v.BitLen() > Bits {
		return Zero, errors.Wrapf(errors.ErrOverflow, "quantity %q exceeds %d bits", s, Bits)
	}
	return Amount{v: *v}, nil
}

// MustParse is like Parse, but panics on malformed input. Use it only with
// constant values.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the decimal representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// IsZero returns true if this is a zero amount.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp compares two amounts and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equals returns true if both amounts are equal.
func (a Amount) Equals(b Amount) bool {
	return a.v.Eq(&b.v)
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.v.Lt(&b.v)
}

// Add returns a + b. It fails with errors.ErrOverflow if the result does
// not fit into 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var res Amount
	if _, overflow := res.v.AddOverflow(&a.v, &b.v); overflow || res.v.BitLen() > Bits {
		return Zero, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns a - b. It fails with errors.ErrInsufficientAmount if b is
// greater than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	if a.v.Lt(&b.v) {
		return Zero, errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", a, b)
	}
	var res Amount
	res.v.Sub(&a.v, &b.v)
	return res, nil
}

// Min returns the smaller of given amounts.
func Min(a, b Amount) Amount {
	if a.v.Lt(&b.v) {
		return a
	}
	return b
}

// Sum adds all given amounts together.
func Sum(amounts ...Amount) (Amount, error) {
	total := Zero
	for _, a := range amounts {
		var err error
		if total, err = total.Add(a); err != nil {
			return Zero, err
		}
	}
	return total, nil
}

// MarshalJSON encodes the amount as a decimal string, so that no precision
// is lost by JSON clients using floating point numbers.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrAmount, "quantity must be a string or a number")
		}
		s = n.String()
	}
	v, err := Parse(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
