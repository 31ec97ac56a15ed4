/*
Package commands holds the command line helpers shared by the tokend binary.
*/
package commands

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tokenweave/errors"
)

// Example is a message or model written out by TestGenCmd. Filename has
// neither directory nor extension.
type Example struct {
	Filename string
	Obj      proto.Message
}

// encodings written for every example, by file extension.
var encodings = []struct {
	ext    string
	encode func(proto.Message) ([]byte, error)
}{
	{ext: ".json", encode: func(m proto.Message) ([]byte, error) { return json.Marshal(m) }},
	{ext: ".bin", encode: proto.Marshal},
}

// TestGenCmd writes the JSON and protobuf encoding of every example into
// a directory, "testdata" unless another is given as the first argument.
// Client libraries check their codecs against these files.
func TestGenCmd(examples []Example, args []string) error {
	dir := "testdata"
	if len(args) > 0 {
		dir = args[0]
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "output directory")
	}
	for _, ex := range examples {
		for _, enc := range encodings {
			raw, err := enc.encode(ex.Obj)
			if err != nil {
				return errors.Wrapf(err, "encode %s%s", ex.Filename, enc.ext)
			}
			path := filepath.Join(dir, ex.Filename+enc.ext)
			if err := ioutil.WriteFile(path, raw, 0644); err != nil {
				return errors.Wrapf(err, "write %s", path)
			}
		}
	}
	return nil
}
