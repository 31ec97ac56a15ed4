package weave

import (
	"fmt"

	"github.com/iov-one/tokenweave/errors"
)

// ExpiresAtHeight returns an expiration reached at given block height.
func ExpiresAtHeight(height int64) *Expiration {
	return &Expiration{AtHeight: height}
}

// ExpiresAtTime returns an expiration reached at given block time.
func ExpiresAtTime(t UnixTime) *Expiration {
	return &Expiration{AtTime: t}
}

// IsNever returns true if this expiration can never be reached. A nil
// expiration never expires.
func (m *Expiration) IsNever() bool {
	return m == nil || (m.AtHeight == 0 && m.AtTime == 0)
}

// Validate returns an error if more than one expiration form is set or any
// value is negative.
func (m *Expiration) Validate() error {
	if m == nil {
		return nil
	}
	if m.AtHeight < 0 {
		return errors.Wrap(errors.ErrInput, "negative expiration height")
	}
	if err := m.AtTime.Validate(); err != nil {
		return errors.Wrap(err, "expiration time")
	}
	if m.AtHeight != 0 && m.AtTime != 0 {
		return errors.Wrap(errors.ErrInput, "expiration must be either height or time")
	}
	return nil
}

// ExpiredAt returns true if this expiration is reached for a block of given
// height and time. Both forms are inclusive: an expiration at height H is
// still valid at H-1 and expired at H.
func (m *Expiration) ExpiredAt(height int64, now UnixTime) bool {
	switch {
	case m.IsNever():
		return false
	case m.AtHeight != 0:
		return height >= m.AtHeight
	default:
		return now >= m.AtTime
	}
}

// IsExpired returns true if this expiration is reached for the block
// declared by given context.
//
// This function panics if the context does not carry the block information
// required by the expiration form. This must never happen for a correctly
// set up application.
func (m *Expiration) IsExpired(ctx Context) bool {
	switch {
	case m.IsNever():
		return false
	case m.AtHeight != 0:
		height, ok := GetHeight(ctx)
		if !ok {
			panic("block height not present in the context")
		}
		return height >= m.AtHeight
	default:
		return IsExpired(ctx, m.AtTime)
	}
}

// Describe returns a short human readable representation, used in events
// and logs.
func (m *Expiration) Describe() string {
	switch {
	case m.IsNever():
		return "never"
	case m.AtHeight != 0:
		return fmt.Sprintf("height:%d", m.AtHeight)
	default:
		return fmt.Sprintf("time:%d", m.AtTime)
	}
}
