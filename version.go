// Package seqpad carries the release metadata for the sequence editor
// module. The widget itself lives in the editor, seqdoc, classify, and
// importflow packages; this package only answers "which seqpad is this".
package seqpad

import (
	_ "embed"
	"regexp"
	"strings"
)

// Canonical SemVer 2.0.0 shape, including pre-release and build parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// The VERSION file is the single source of truth for releases; release
// tags are cut from it.
//
//go:embed VERSION
var embeddedVersion string

// Version returns the seqpad release version, without the `v` prefix.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns the release's git tag (Version with a leading `v`).
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is valid SemVer 2.0.0.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded version is valid SemVer.
// Release tooling checks this before tagging.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
