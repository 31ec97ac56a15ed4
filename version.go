package weave

import "fmt"

// Version numbers of the tokenweave release.
const (
	Maj = 0
	Min = 1
	Fix = 0
)

// Suffix is set for untagged builds.
const Suffix = "-dev"

var version = fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)

// GitCommit is set by build flags.
var GitCommit = ""

// Version returns the release string, including the commit when known.
func Version() string {
	if GitCommit != "" {
		return version + " " + GitCommit
	}
	return version
}
