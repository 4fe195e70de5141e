package version

import "github.com/Masterminds/semver/v3"

// Increment names the version component bumped between releases.
type Increment string

const (
	IncrementMajor Increment = "major"
	IncrementMinor Increment = "minor"
	IncrementPatch Increment = "patch"

	// IncrementInherit defers a branch configuration to the top-level
	// increment.
	IncrementInherit Increment = "inherit"
)

// Apply bumps the given version by the increment. Unset and inherit values
// bump the patch component.
func (i Increment) Apply(v semver.Version) semver.Version {
	switch i {
	case IncrementMajor:
		return v.IncMajor()
	case IncrementMinor:
		return v.IncMinor()
	default:
		return v.IncPatch()
	}
}
