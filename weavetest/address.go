package weavetest

import (
	"crypto/rand"
	"encoding/hex"
	"testing"

	weave "github.com/iov-one/tokenweave"
)

// ParseAddress takes a weave address in a human readable format and returns
// its binary representation. This function is a test helper that is using
// weave.ParseAddress function functionality.
func ParseAddress(t testing.TB, encodedAddress string) weave.Address {
	t.Helper()

	addr, err := weave.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}

// RandomAddr returns a valid random weave address generated on the fly.
func RandomAddr(t testing.TB) weave.Address {
	t.Helper()

	raw := make([]byte, weave.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot generate a random address: %s", err)
	}
	a := weave.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("generated address is not a valid weave address: %s", err)
	}
	return a
}

// DecodeAddr takes a hex encoded address string and returns its raw
// representation as a weave address. This function ensures that returned value
// is a valid address.
func DecodeAddr(t testing.TB, encoded string) weave.Address {
	t.Helper()

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		t.Fatalf("cannot decode hex string: %s", err)
	}
	a := weave.Address(raw)
	if err := a.Validate(); err != nil {
		t.Fatalf("decoded string is not a valid address: %s", err)
	}
	return a
}
