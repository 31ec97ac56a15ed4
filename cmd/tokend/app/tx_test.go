package tokend

import (
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest"
	"github.com/iov-one/tokenweave/x/multitoken"
	"github.com/iov-one/tokenweave/x/nft"
	"github.com/iov-one/tokenweave/x/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxMessage(t *testing.T) {
	addr := weavetest.NewCondition().Address()

	cases := map[string]struct {
		msgs    []weave.Msg
		wantErr *errors.Error
	}{
		"multitoken": {
			msgs: []weave.Msg{&multitoken.BurnMsg{Metadata: meta(), AssetID: "gold", Quantity: "1"}},
		},
		"nft": {
			msgs: []weave.Msg{&nft.TransferMsg{Metadata: meta(), ID: "7", Recipient: addr}},
		},
		"sale": {
			msgs: []weave.Msg{&sale.BuyMsg{Metadata: meta(), Buyer: addr, Quantity: "10"}},
		},
		"empty": {
			wantErr: errors.ErrEmpty,
		},
		"two messages": {
			msgs: []weave.Msg{
				&nft.BurnMsg{Metadata: meta(), ID: "7"},
				&sale.BuyMsg{Metadata: meta(), Buyer: addr, Quantity: "10"},
			},
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var tx Tx
			for _, m := range tc.msgs {
				require.NoError(t, tx.SetMsg(m))
			}
			raw, err := tx.Marshal()
			require.NoError(t, err)

			decoded, err := TxDecoder(raw)
			require.NoError(t, err)
			msg, err := decoded.GetMsg()
			if tc.wantErr != nil {
				assert.True(t, tc.wantErr.Is(err), "got %+v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.msgs[0], msg)
		})
	}
}

func TestSetUnknownMsg(t *testing.T) {
	var tx Tx
	err := tx.SetMsg(&weavetest.Msg{RoutePath: "foo/bar"})
	assert.True(t, errors.ErrType.Is(err), "got %+v", err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := TxDecoder([]byte{0xff, 0xff, 0xff})
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)
}
