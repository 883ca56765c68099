// Package version exposes the build version of the binary.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Current is set at build time via -ldflags "-X .../version.Current=v1.2.3".
var Current = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical semver of Current, or "dev" for
// untagged builds.
func String() string {
	v := Normalize(Current)
	if !semver.IsValid(v) {
		return "dev"
	}
	return semver.Canonical(v)
}
