package weave

import (
	"fmt"
	"sort"
)

// Query modifiers follow the "?" of a query path. Without a modifier the
// query data is an exact key.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers the queries sent to one path. Mod is one of the
// query modifiers.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister adds the query handlers of an extension to a router.
type QueryRegister func(QueryRouter)

// QueryRouter maps query paths, such as "/multitoken/balances", to their
// handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register function with this router.
func (r QueryRouter) RegisterAll(registers ...QueryRegister) {
	for _, register := range registers {
		register(r)
	}
}

// Register binds h to path. A path can be bound only once, registering it
// again panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if prev, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("query path %q already handled by %T", path, prev))
	}
	r.routes[path] = h
}

// Handler returns the handler bound to path or nil.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}

// Paths lists the registered paths in ascending order.
func (r QueryRouter) Paths() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
