package weave

import (
	"testing"

	"github.com/iov-one/tokenweave/weavetest/assert"
)

type staticQuery []Model

func (s staticQuery) Query(ReadOnlyKVStore, string, []byte) ([]Model, error) {
	return s, nil
}

func TestQueryRouter(t *testing.T) {
	r := NewQueryRouter()
	r.RegisterAll(
		func(qr QueryRouter) { qr.Register("/b", staticQuery{Pair([]byte("k"), []byte("v"))}) },
		func(qr QueryRouter) { qr.Register("/a", staticQuery{}) },
	)
	assert.Equal(t, []string{"/a", "/b"}, r.Paths())

	h := r.Handler("/b")
	models, err := h.Query(nil, KeyQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, []Model{{Key: []byte("k"), Value: []byte("v")}}, models)

	assert.Equal(t, nil, r.Handler("/missing"))
	assert.Panics(t, func() { r.Register("/a", staticQuery{}) })
}
