package app

import (
	weave "github.com/iov-one/tokenweave"
	"github.com/iov-one/tokenweave/errors"
)

// ResultsFromKeys collects the keys of models, in order.
func ResultsFromKeys(models []weave.Model) *ResultSet {
	rs := &ResultSet{Results: make([][]byte, 0, len(models))}
	for _, m := range models {
		rs.Results = append(rs.Results, m.Key)
	}
	return rs
}

// ResultsFromValues collects the values of models, in order.
func ResultsFromValues(models []weave.Model) *ResultSet {
	rs := &ResultSet{Results: make([][]byte, 0, len(models))}
	for _, m := range models {
		rs.Results = append(rs.Results, m.Value)
	}
	return rs
}

// JoinResults pairs the key and value sets of a query response back into
// models.
func JoinResults(keys, values *ResultSet) ([]weave.Model, error) {
	if n, m := len(keys.Results), len(values.Results); n != m {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", n, m)
	}
	models := make([]weave.Model, 0, len(keys.Results))
	for i, k := range keys.Results {
		models = append(models, weave.Pair(k, values.Results[i]))
	}
	return models, nil
}

// UnmarshalOneResult decodes the first value of a serialized ResultSet
// into dest. An empty set is ErrNotFound.
func UnmarshalOneResult(raw []byte, dest weave.Persistent) error {
	var rs ResultSet
	if err := rs.Unmarshal(raw); err != nil {
		return errors.Wrap(err, "result set")
	}
	if len(rs.Results) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty result set")
	}
	return dest.Unmarshal(rs.Results[0])
}
