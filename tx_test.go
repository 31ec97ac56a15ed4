package weave

import (
	"testing"

	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

// burnMsg and mintMsg are two distinct message types.
type burnMsg struct {
	Asset    string
	Quantity int
}

func (burnMsg) Path() string             { return "test/burn" }
func (burnMsg) Validate() error          { return nil }
func (burnMsg) Marshal() ([]byte, error) { return nil, nil }
func (*burnMsg) Unmarshal([]byte) error  { return nil }

type mintMsg struct {
	Asset string
	err   error
}

func (mintMsg) Path() string             { return "test/mint" }
func (m mintMsg) Validate() error        { return m.err }
func (mintMsg) Marshal() ([]byte, error) { return nil, nil }
func (*mintMsg) Unmarshal([]byte) error  { return nil }

type txStub struct {
	msg Msg
	err error
}

func (tx *txStub) GetMsg() (Msg, error)  { return tx.msg, tx.err }
func (*txStub) Marshal() ([]byte, error) { return nil, nil }
func (*txStub) Unmarshal([]byte) error   { return nil }

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      Tx
		dest    interface{}
		want    interface{}
		wantErr *errors.Error
	}{
		"burn": {
			tx:   &txStub{msg: &burnMsg{Asset: "gold", Quantity: 3}},
			dest: &burnMsg{},
			want: &burnMsg{Asset: "gold", Quantity: 3},
		},
		"mint": {
			tx:   &txStub{msg: &mintMsg{Asset: "silver"}},
			dest: &mintMsg{},
			want: &mintMsg{Asset: "silver"},
		},
		"no message": {
			tx:      &txStub{},
			dest:    &burnMsg{},
			wantErr: errors.ErrState,
		},
		"typed nil message": {
			tx:      &txStub{msg: (*burnMsg)(nil)},
			dest:    &burnMsg{},
			wantErr: errors.ErrState,
		},
		"message not available": {
			tx:      &txStub{err: errors.ErrInput},
			dest:    &burnMsg{},
			wantErr: errors.ErrInput,
		},
		"invalid message": {
			tx:      &txStub{msg: &mintMsg{err: errors.ErrCurrency}},
			dest:    &mintMsg{},
			wantErr: errors.ErrCurrency,
		},
		"other message type": {
			tx:      &txStub{msg: &burnMsg{}},
			dest:    &mintMsg{},
			wantErr: errors.ErrType,
		},
		"destination not a pointer": {
			tx:      &txStub{msg: &burnMsg{}},
			dest:    burnMsg{},
			wantErr: errors.ErrType,
		},
		"nil destination": {
			tx:      &txStub{msg: &burnMsg{}},
			dest:    (*burnMsg)(nil),
			wantErr: errors.ErrType,
		},
		"no destination": {
			tx:      &txStub{msg: &burnMsg{}},
			wantErr: errors.ErrType,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := LoadMsg(tc.tx, tc.dest)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, tc.want, tc.dest)
			}
		})
	}
}

func TestGetPath(t *testing.T) {
	assert.Equal(t, "test/burn", GetPath(&txStub{msg: &burnMsg{}}))
	assert.Equal(t, "(missing)", GetPath(&txStub{}))
	assert.Equal(t, "(missing)", GetPath(&txStub{msg: (*mintMsg)(nil)}))
	assert.Equal(t, "(missing)", GetPath(&txStub{err: errors.ErrInput}))
	assert.Equal(t, "(missing)", GetPath(nil))
}
