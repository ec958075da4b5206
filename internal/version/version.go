// Package version reports the build version.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Dev is reported by builds without a release version.
const Dev = "(devel)"

// Version is set via -ldflags at build time.
var Version = Dev

// String returns the canonical form of Version ("v1.2.3"), or Dev when
// Version is not a semantic version.
func String() string {
	return Normalize(Version)
}

// Normalize canonicalizes v, accepting a missing "v" prefix.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return Dev
	}
	return semver.Canonical(v)
}

// IsRelease reports whether v is a release (non-prerelease) version.
func IsRelease(v string) bool {
	n := Normalize(v)
	return n != Dev && semver.Prerelease(n) == ""
}
