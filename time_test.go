package weave

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/tokenweave/errors"
	"github.com/iov-one/tokenweave/weavetest/assert"
)

func TestUnixTimeFromJSON(t *testing.T) {
	cases := map[string]struct {
		raw     string
		want    UnixTime
		wantErr *errors.Error
	}{
		"seconds":          {raw: `1554370540`, want: 1554370540},
		"epoch":            {raw: `0`, want: 0},
		"rfc3339":          {raw: `"2019-04-04T09:35:40Z"`, want: 1554370540},
		"rfc3339 offset":   {raw: `"2019-04-04T11:35:40.5+02:00"`, want: 1554370540},
		"before epoch":     {raw: `-30`, wantErr: errors.ErrInput},
		"date before 1970": {raw: `"1969-12-31T23:59:00Z"`, wantErr: errors.ErrInput},
		"garbage":          {raw: `"next tuesday"`, wantErr: errors.ErrInput},
		"object":           {raw: `{}`, wantErr: errors.ErrInput},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got UnixTime
			err := json.Unmarshal([]byte(tc.raw), &got)
			assert.IsErr(t, tc.wantErr, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnixTimeArithmetic(t *testing.T) {
	start := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	u := AsUnixTime(start)

	assert.Equal(t, start.Unix(), u.Time().Unix())
	assert.Equal(t, AsUnixTime(start.Add(90*time.Minute)), u.Add(90*time.Minute))
	// Sub-second durations are dropped.
	assert.Equal(t, u, u.Add(999*time.Millisecond))
	assert.Equal(t, "2020-06-01T12:00:00Z", u.String())
}
