package multitoken

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/amount"
	"github.com/iov-one/tokenweave/errors"
)

func validateAddress(name string, a weave.Address) error {
	if err := a.Validate(); err != nil {
		return errors.Field(name, errors.Wrap(errors.ErrInput, err.Error()), "invalid address")
	}
	return nil
}

var _ weave.Msg = (*MintMsg)(nil)

func (MintMsg) Path() string {
	return "multitoken/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("To", m.To))
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed quantity to mint.
func (m *MintMsg) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

var _ weave.Msg = (*SendFromMsg)(nil)

func (SendFromMsg) Path() string {
	return "multitoken/send_from"
}

func (m *SendFromMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("From", m.From))
	errs = errors.Append(errs, validateAddress("To", m.To))
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed quantity to send.
func (m *SendFromMsg) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

var _ weave.Msg = (*BatchSendFromMsg)(nil)

func (BatchSendFromMsg) Path() string {
	return "multitoken/batch_send_from"
}

func (m *BatchSendFromMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("From", m.From))
	errs = errors.Append(errs, validateAddress("To", m.To))
	errs = errors.Append(errs, validateItems(m.Items))
	return errs
}

var _ weave.Msg = (*BurnMsg)(nil)

func (BurnMsg) Path() string {
	return "multitoken/burn"
}

func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "AssetID", validateAssetID(m.AssetID))
	if _, err := m.Amount(); err != nil {
		errs = errors.AppendField(errs, "Quantity", err)
	}
	return errs
}

// Amount returns the parsed quantity to burn.
func (m *BurnMsg) Amount() (amount.Amount, error) {
	return amount.Parse(m.Quantity)
}

var _ weave.Msg = (*BatchBurnMsg)(nil)

func (BatchBurnMsg) Path() string {
	return "multitoken/batch_burn"
}

func (m *BatchBurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateItems(m.Items))
	return errs
}

var _ weave.Msg = (*ApproveAllMsg)(nil)

func (ApproveAllMsg) Path() string {
	return "multitoken/approve_all"
}

func (m *ApproveAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("Operator", m.Operator))
	errs = errors.AppendField(errs, "Expires", m.Expires.Validate())
	return errs
}

var _ weave.Msg = (*RevokeAllMsg)(nil)

func (RevokeAllMsg) Path() string {
	return "multitoken/revoke_all"
}

func (m *RevokeAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("Operator", m.Operator))
	return errs
}
