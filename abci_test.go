package weave

import (
	"testing"

	"github.com/iov-one/tokenweave/errors"
	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"
)

func TestDeliverResponse(t *testing.T) {
	tags := []common.KVPair{{Key: []byte("owner"), Value: []byte("alice")}}
	res := DeliverResponse(&DeliverResult{Data: []byte("notification"), Log: "sent", Tags: tags}, nil, false)
	assert.Equal(t, uint32(0), res.Code)
	assert.Equal(t, []byte("notification"), res.Data)
	assert.Equal(t, "sent", res.Log)
	assert.Equal(t, tags, res.Tags)

	res = DeliverResponse(&DeliverResult{Data: []byte("ignored")}, errors.Wrap(errors.ErrInsufficientAmount, "gold"), false)
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), res.Code)
	assert.Nil(t, res.Data)
	assert.Contains(t, res.Log, "cannot deliver tx")
	assert.Contains(t, res.Log, "gold")
}

func TestCheckResponse(t *testing.T) {
	res := CheckResponse(nil, nil, false)
	assert.Equal(t, uint32(0), res.Code)

	res = CheckResponse(nil, errors.ErrUnauthorized, false)
	assert.Equal(t, errors.ErrUnauthorized.ABCICode(), res.Code)
	assert.Contains(t, res.Log, "cannot check tx")
}
