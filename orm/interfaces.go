package orm

import (
	"regexp"

	weave "github.com/iov-one/tokenweave"
)

var isBucketName = regexp.MustCompile(`^[a-z][a-z0-9_]{2,31}$`).MatchString

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	weave.Persistent

	// Validate returns an error if the model is not in a valid state to
	// be saved in the database.
	Validate() error
}

// Indexer calculates the secondary index value for given model. Returning a
// nil value excludes the model from the index.
type Indexer func(Model) ([]byte, error)

// ModelIterator iterates over the entities stored in a bucket.
type ModelIterator interface {
	// Next loads the next entity into given destination and returns its
	// primary key. errors.ErrIteratorDone is returned when there are no
	// more entities.
	Next(dest Model) ([]byte, error)

	// Release releases the underlying database iterator.
	Release()
}
