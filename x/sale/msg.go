package sale

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
)

var _ weave.Msg = (*BuyMsg)(nil)

func (BuyMsg) Path() string {
	return "sale/buy"
}

func (m *BuyMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if err := m.Buyer.Validate(); err != nil {
		errs = errors.Append(errs, errors.Field("Buyer", errors.Wrap(errors.ErrInput, err.Error()), "invalid address"))
	}
	if _, err := amount.Parse(m.Quantity); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed payment quantity.
func (m *BuyMsg) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}
