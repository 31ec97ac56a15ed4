package nft

import (
	weave "github.com/iov-one/tokenweave"
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
	return "nft/mint"
}

func (m *MintMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.Append(errs, validateAddress("Owner", m.Owner))
	return errs
}

var _ weave.Msg = (*TransferMsg)(nil)

func (TransferMsg) Path() string {
	return "nft/transfer"
}

func (m *TransferMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.Append(errs, validateAddress("Recipient", m.Recipient))
	return errs
}

var _ weave.Msg = (*SendMsg)(nil)

func (SendMsg) Path() string {
	return "nft/send"
}

func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.Append(errs, validateAddress("Contract", m.Contract))
	return errs
}

var _ weave.Msg = (*ApproveMsg)(nil)

func (ApproveMsg) Path() string {
	return "nft/approve"
}

func (m *ApproveMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.Append(errs, validateAddress("Spender", m.Spender))
	errs = errors.AppendField(errs, "Expires", m.Expires.Validate())
	return errs
}

var _ weave.Msg = (*RevokeMsg)(nil)

func (RevokeMsg) Path() string {
	return "nft/revoke"
}

func (m *RevokeMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	errs = errors.Append(errs, validateAddress("Spender", m.Spender))
	return errs
}

var _ weave.Msg = (*ApproveAllMsg)(nil)

func (ApproveAllMsg) Path() string {
	return "nft/approve_all"
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
	return "nft/revoke_all"
}

func (m *RevokeAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.Append(errs, validateAddress("Operator", m.Operator))
	return errs
}

var _ weave.Msg = (*BurnMsg)(nil)

func (BurnMsg) Path() string {
	return "nft/burn"
}

func (m *BurnMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "ID", validateID(m.ID))
	return errs
}
