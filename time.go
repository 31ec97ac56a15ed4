package weave

import (
	"encoding/json"
	"time"

	"github.com/iov-one/tokenweave/errors"
)

// UnixTime is a number of seconds since the epoch. Expirations and every
// other persisted point in time use it.
type UnixTime int64

func AsUnixTime(t time.Time) UnixTime {
	return UnixTime(t.Unix())
}

func (t UnixTime) Time() time.Time {
	return time.Unix(int64(t), 0)
}

// Add works like time.Time.Add, with the duration truncated to seconds.
func (t UnixTime) Add(d time.Duration) UnixTime {
	return t + UnixTime(d/time.Second)
}

// Validate rejects times before the epoch.
func (t UnixTime) Validate() error {
	if t < 0 {
		return errors.Wrapf(errors.ErrInput, "time %d before epoch", int64(t))
	}
	return nil
}

func (t UnixTime) String() string {
	return t.Time().UTC().Format(time.RFC3339)
}

// UnmarshalJSON accepts a number of seconds or, more readable in a
// genesis file, an RFC 3339 string.
func (t *UnixTime) UnmarshalJSON(raw []byte) error {
	var parsed UnixTime
	var seconds int64
	var stamp time.Time
	switch {
	case json.Unmarshal(raw, &seconds) == nil:
		parsed = UnixTime(seconds)
	case json.Unmarshal(raw, &stamp) == nil:
		parsed = AsUnixTime(stamp)
	default:
		return errors.Wrapf(errors.ErrInput, "time %s", raw)
	}
	if err := parsed.Validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}
