package weave_test

import (
	"encoding/json"
	"testing"

	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestConditionParse(t *testing.T) {
	Convey("a condition built from its sections", t, func() {
		c := weave.NewCondition("sigs", "ed25519", []byte("pub\nkey"))

		Convey("parses back into the same sections", func() {
			ext, typ, data, err := c.Parse()
			So(err, ShouldBeNil)
			So(ext, ShouldEqual, "sigs")
			So(typ, ShouldEqual, "ed25519")
			So(data, ShouldResemble, []byte("pub\nkey"))
			So(c.Validate(), ShouldBeNil)
		})

		Convey("prints data as hex", func() {
			So(c.String(), ShouldEqual, "sigs/ed25519/7075620A6B6579")
		})

		Convey("has a stable address", func() {
			So(c.Address().Validate(), ShouldBeNil)
			So(c.Address(), ShouldResemble, weave.NewCondition("sigs", "ed25519", []byte("pub\nkey")).Address())
			So(c.Address(), ShouldNotResemble, weave.NewCondition("sigs", "ed25519", []byte("other")).Address())
		})
	})

	Convey("malformed conditions are rejected", t, func() {
		for _, raw := range []string{"", "sigs/ed25519/", "ab/ed25519/x", "sigs/toolongtype/x", "sigs ed25519 x"} {
			c := weave.Condition(raw)
			So(errors.ErrInput.Is(c.Validate()), ShouldBeTrue)
			_, _, _, err := c.Parse()
			So(errors.ErrInput.Is(err), ShouldBeTrue)
		}
	})
}

func TestConditionJSON(t *testing.T) {
	cases := map[string]struct {
		json    string
		want    weave.Condition
		wantErr *errors.Error
	}{
		"hex data": {
			json: `"multi/escrow/0102FF"`,
			want: weave.NewCondition("multi", "escrow", []byte{1, 2, 0xFF}),
		},
		"lower case hex": {
			json: `"multi/escrow/0102ff"`,
			want: weave.NewCondition("multi", "escrow", []byte{1, 2, 0xFF}),
		},
		"empty": {
			json: `""`,
			want: nil,
		},
		"missing section": {
			json:    `"multi/0102"`,
			wantErr: errors.ErrInput,
		},
		"bad hex": {
			json:    `"multi/escrow/xyz"`,
			wantErr: errors.ErrInput,
		},
		"not a string": {
			json:    `42`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var got weave.Condition
			if err := json.Unmarshal([]byte(tc.json), &got); !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			if !got.Equals(tc.want) {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
			raw, err := json.Marshal(got)
			if err != nil {
				t.Fatalf("cannot marshal: %s", err)
			}
			var again weave.Condition
			if err := json.Unmarshal(raw, &again); err != nil || !again.Equals(got) {
				t.Fatalf("%s does not decode back: %+v", raw, err)
			}
		})
	}
}
