package weave

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/tokenweave/errors"
)

const (
	// AddressLength is the length of all addresses.
	AddressLength = 20

	// Bech32Prefix is the human readable part of bech32 addresses.
	Bech32Prefix = "tok"
)

// Address identifies an account. It is a truncated sha256 digest of the
// Condition that controls it, so that it cannot be reversed.
type Address []byte

// NewAddress hashes data into an address. Nil data is a nil address.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	sum := sha256.Sum256(data)
	return Address(sum[:AddressLength])
}

// ParseAddress decodes the textual form of an address. The format is
// selected with a prefix and defaults to hex:
//
//	hex:<hex>
//	bech32:<bech32 using Bech32Prefix>
//	cond:<ext>/<type>/<hex data>
//
// The result is always a valid address.
func ParseAddress(s string) (Address, error) {
	format, enc := "hex", s
	if i := strings.Index(s, ":"); i >= 0 {
		format, enc = s[:i], s[i+1:]
	}
	if enc == "" {
		return nil, errors.Wrap(errors.ErrEmpty, "address")
	}

	var (
		addr Address
		err  error
	)
	switch format {
	case "hex":
		addr, err = hex.DecodeString(enc)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrInput, "hex address: %s", err)
		}
	case "bech32":
		addr, err = decodeBech32(enc)
	case "cond":
		var c Condition
		if c, err = conditionFromString(enc); err == nil {
			err = c.Validate()
		}
		addr = c.Address()
	default:
		return nil, errors.Wrapf(errors.ErrType, "address format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return addr, addr.Validate()
}

func (a Address) Validate() error {
	switch n := len(a); {
	case n == 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	case n != AddressLength:
		return errors.Wrapf(errors.ErrInput, "address %X has %d bytes", []byte(a), n)
	}
	return nil
}

func (a Address) Equals(o Address) bool {
	return bytes.Equal(a, o)
}

// String is the upper case hex form, or "(nil)" for an empty address.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	return strings.ToUpper(hex.EncodeToString(a))
}

// Bech32 encodes the address with Bech32Prefix.
func (a Address) Bech32() (string, error) {
	groups, err := bech32.ConvertBits(a, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	enc, err := bech32.Encode(Bech32Prefix, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	return enc, nil
}

func decodeBech32(enc string) (Address, error) {
	hrp, groups, err := bech32.Decode(enc)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	if hrp != Bech32Prefix {
		return nil, errors.Wrapf(errors.ErrInput, "bech32 prefix %q, want %q", hrp, Bech32Prefix)
	}
	payload, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "bech32: %s", err)
	}
	return payload, nil
}

// MarshalJSON uses the hex form instead of base64.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.ToUpper(hex.EncodeToString(a)))
}

// UnmarshalJSON accepts every format of ParseAddress. An empty string is
// a nil address.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if s == "" {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}
