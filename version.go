package workshop

import (
	_ "embed"
	"strings"
)

// Version is the release version of the workshop binaries, read from the VERSION file.
//
//go:embed VERSION
var Version string

// VersionString returns Version without the trailing newline.
func VersionString() string {
	return strings.TrimSpace(Version)
}
