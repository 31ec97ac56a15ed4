package weave_test

import (
	"encoding/hex"
	"encoding/json"
	"strings"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	cond := weave.NewCondition("multi", "escrow", []byte("holder"))
	addr := cond.Address()
	b32, err := addr.Bech32()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(b32, weave.Bech32Prefix+"1"), b32)

	other, err := weave.NewCondition("multi", "escrow", []byte("x")).Address().Bech32()
	require.NoError(t, err)
	foreign := "abc" + strings.TrimPrefix(other, weave.Bech32Prefix)

	cases := map[string]struct {
		raw     string
		want    weave.Address
		wantErr *errors.Error
	}{
		"no prefix":         {raw: hex.EncodeToString(addr), want: addr},
		"hex":               {raw: "hex:" + hex.EncodeToString(addr), want: addr},
		"upper case hex":    {raw: "hex:" + addr.String(), want: addr},
		"bech32":            {raw: "bech32:" + b32, want: addr},
		"condition":         {raw: "cond:multi/escrow/" + hex.EncodeToString([]byte("holder")), want: addr},
		"short":             {raw: "hex:0102", wantErr: errors.ErrInput},
		"bad hex":           {raw: "hex:0g", wantErr: errors.ErrInput},
		"bad condition":     {raw: "cond:multi/" + hex.EncodeToString([]byte("holder")), wantErr: errors.ErrInput},
		"bad condition hex": {raw: "cond:multi/escrow/0g", wantErr: errors.ErrInput},
		"foreign bech32":    {raw: "bech32:" + foreign, wantErr: errors.ErrInput},
		"bad bech32":        {raw: "bech32:" + b32 + "q", wantErr: errors.ErrInput},
		"unknown format":    {raw: "base64:AAAA", wantErr: errors.ErrType},
		"empty":             {raw: "", wantErr: errors.ErrEmpty},
		"empty bech32":      {raw: "bech32:", wantErr: errors.ErrEmpty},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := weave.ParseAddress(tc.raw)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, weave.Address(make([]byte, weave.AddressLength)).Validate())
	assert.True(t, errors.ErrEmpty.Is(weave.Address(nil).Validate()))
	assert.True(t, errors.ErrInput.Is(weave.Address("short").Validate()))
	assert.True(t, errors.ErrInput.Is(weave.Address(make([]byte, weave.AddressLength+1)).Validate()))
}

func TestAddressString(t *testing.T) {
	addr := weave.NewAddress([]byte("holder"))
	assert.Equal(t, strings.ToUpper(hex.EncodeToString(addr)), addr.String())
	assert.Equal(t, "(nil)", weave.Address(nil).String())
	assert.Nil(t, weave.NewAddress(nil))
}

func TestAddressJSON(t *testing.T) {
	type holder struct {
		Owner weave.Address `json:"owner"`
	}
	addr := weave.NewCondition("multi", "escrow", []byte("holder")).Address()

	raw, err := json.Marshal(holder{Owner: addr})
	require.NoError(t, err)
	assert.Equal(t, `{"owner":"`+addr.String()+`"}`, string(raw))

	var got holder
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, addr, got.Owner)

	b32, err := addr.Bech32()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(`{"owner":"bech32:`+b32+`"}`), &got))
	assert.Equal(t, addr, got.Owner)

	require.NoError(t, json.Unmarshal([]byte(`{"owner":""}`), &got))
	assert.Nil(t, got.Owner)

	err = json.Unmarshal([]byte(`{"owner":"cond:multi/escrow/0g"}`), &got)
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}
