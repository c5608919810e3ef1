// Package version provides strict semantic version parsing and comparison.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/archup/archup/internal/messages"
)

// Version is a parsed semantic version triple.
type Version struct {
	Major int
	Minor int
	Patch int
}

// New constructs a Version from its components.
func New(major, minor, patch int) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Parse converts a strict X.Y.Z string into a Version.
// Anything else (missing segments, signs, non-numeric segments, empty input)
// is an error; malformed input never produces a zero version.
func Parse(raw string) (Version, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf(messages.VersionInvalidFmt, raw)
	}
	segments := [3]int{}
	for i, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return Version{}, fmt.Errorf(messages.VersionInvalidSegmentFmt, raw, part)
		}
		value, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf(messages.VersionInvalidSegmentFmt, raw, part)
		}
		segments[i] = value
	}
	return Version{Major: segments[0], Minor: segments[1], Patch: segments[2]}, nil
}

// Compare orders two versions lexicographically on (major, minor, patch).
// It returns -1 if v < other, 0 if equal, and 1 if v > other.
func (v Version) Compare(other Version) int {
	pairs := [3][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, pair := range pairs {
		if pair[0] < pair[1] {
			return -1
		}
		if pair[0] > pair[1] {
			return 1
		}
	}
	return 0
}

// AtLeast reports whether v is greater than or equal to other.
func (v Version) AtLeast(other Version) bool {
	return v.Compare(other) >= 0
}

// String renders the version in X.Y.Z form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}
