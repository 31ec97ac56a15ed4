package gconf

import (
	"encoding/json"
	"testing"

	"github.com/gogo/protobuf/proto"
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/store"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

type limits struct {
	Owner    weave.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/iov-one/tokenweave.Address" json:"owner"`
	MaxItems int64         `protobuf:"varint,2,opt,name=max_items,proto3" json:"max_items"`
}

func (l *limits) Validate() error {
	if err := l.Owner.Validate(); err != nil {
		return errors.Field("Owner", err, "invalid owner")
	}
	if l.MaxItems <= 0 {
		return errors.Field("MaxItems", errors.ErrInput, "must be positive")
	}
	return nil
}

func (l *limits) Marshal() ([]byte, error)   { return proto.Marshal((*limitsWire)(l)) }
func (l *limits) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*limitsWire)(l)) }

type limitsWire limits

func (l *limitsWire) Reset()         { *l = limitsWire{} }
func (l *limitsWire) String() string { return proto.CompactTextString(l) }
func (*limitsWire) ProtoMessage()    {}

func TestSaveLoad(t *testing.T) {
	owner := weave.NewCondition("sigs", "ed25519", []byte("owner")).Address()

	cases := map[string]struct {
		Conf        *limits
		WantSaveErr *errors.Error
	}{
		"valid": {
			Conf: &limits{Owner: owner, MaxItems: 10},
		},
		"invalid address cannot be saved": {
			Conf:        &limits{Owner: weave.Address("too short"), MaxItems: 10},
			WantSaveErr: errors.ErrInput,
		},
		"invalid limit cannot be saved": {
			Conf:        &limits{Owner: owner},
			WantSaveErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			if err := Save(db, "limits", tc.Conf); !tc.WantSaveErr.Is(err) {
				t.Fatalf("unexpected save error: %s", err)
			}
			var got limits
			err := Load(db, "limits", &got)
			if tc.WantSaveErr != nil {
				assert.IsErr(t, errors.ErrNotFound, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, *tc.Conf, got)
		})
	}
}

func TestInitConfig(t *testing.T) {
	owner := weave.NewCondition("sigs", "ed25519", []byte("owner")).Address()
	genesis := `{"conf": {"limits": {"owner": "` + owner.String() + `", "max_items": 3}}}`

	var opts weave.Options
	assert.Nil(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	assert.Nil(t, InitConfig(db, opts, "limits", &limits{}))

	var got limits
	assert.Nil(t, Load(db, "limits", &got))
	assert.Equal(t, int64(3), got.MaxItems)
	assert.Equal(t, owner, got.Owner)

	err := InitConfig(db, opts, "missing", &limits{})
	assert.IsErr(t, errors.ErrNotFound, err)

	var bad weave.Options
	assert.Nil(t, json.Unmarshal([]byte(`{"conf": {"limits": {"max_items": 0}}}`), &bad))
	assert.IsErr(t, errors.ErrEmpty, InitConfig(store.MemStore(), bad, "limits", &limits{}))
}
