package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// initialVersion seeds repositories that carry no version tag yet.
var initialVersion = semver.MustParse("0.1.0")

// TaggedVersion is a repository tag that parses as a semantic version.
type TaggedVersion struct {
	Name    string
	Version *semver.Version
	Sha     string
}

// Commit identifies the commit a version is computed for.
type Commit struct {
	Sha      string
	ShortSha string
}

// Spec is the slice of configuration governing calculation on one branch.
type Spec struct {
	NextVersion string
	Increment   Increment
	Label       string
}

// Context is the repository state the calculation runs against.
type Context struct {
	Branch          string
	Latest          *TaggedVersion
	CommitsSinceTag int
	Sha             string
	ShortSha        string
}

// Result is the computed version in its presentation forms.
type Result struct {
	Major                     uint64 `json:"major"`
	Minor                     uint64 `json:"minor"`
	Patch                     uint64 `json:"patch"`
	PreRelease                string `json:"preRelease,omitempty"`
	SemVer                    string `json:"semVer"`
	FullSemVer                string `json:"fullSemVer"`
	BranchName                string `json:"branchName"`
	Sha                       string `json:"sha,omitempty"`
	ShortSha                  string `json:"shortSha,omitempty"`
	CommitsSinceVersionSource int    `json:"commitsSinceVersionSource"`
	VersionSource             string `json:"versionSource"`
}

// Calculate derives the next version from the branch spec and the repository
// context. The result is deterministic for a fixed context.
func Calculate(spec Spec, ctx Context) (Result, error) {
	next, source, err := nextVersion(spec, ctx)
	if err != nil {
		return Result{}, err
	}

	if spec.Label != "" && !onTaggedCommit(ctx) {
		withPre, preErr := next.SetPrerelease(fmt.Sprintf("%s.%d", spec.Label, ctx.CommitsSinceTag))
		if preErr != nil {
			return Result{}, fmt.Errorf("set pre-release: %w", preErr)
		}

		next = withPre
	}

	full := next

	if ctx.ShortSha != "" {
		withMeta, metaErr := next.SetMetadata(ctx.ShortSha)
		if metaErr != nil {
			return Result{}, fmt.Errorf("set build metadata: %w", metaErr)
		}

		full = withMeta
	}

	return Result{
		Major:                     next.Major(),
		Minor:                     next.Minor(),
		Patch:                     next.Patch(),
		PreRelease:                next.Prerelease(),
		SemVer:                    next.String(),
		FullSemVer:                full.String(),
		BranchName:                ctx.Branch,
		Sha:                       ctx.Sha,
		ShortSha:                  ctx.ShortSha,
		CommitsSinceVersionSource: ctx.CommitsSinceTag,
		VersionSource:             source,
	}, nil
}

// nextVersion picks the base for the computed version. Sitting exactly on a
// version tag short-circuits: the tag is the version.
func nextVersion(spec Spec, ctx Context) (semver.Version, string, error) {
	if onTaggedCommit(ctx) {
		return *ctx.Latest.Version, ctx.Latest.Name, nil
	}

	next := *initialVersion
	source := "none"

	if ctx.Latest != nil {
		next = spec.Increment.Apply(*ctx.Latest.Version)
		source = ctx.Latest.Name
	}

	if spec.NextVersion == "" {
		return next, source, nil
	}

	configured, err := semver.NewVersion(spec.NextVersion)
	if err != nil {
		return semver.Version{}, "", fmt.Errorf("parse next-version %q: %w", spec.NextVersion, err)
	}

	if configured.GreaterThan(&next) {
		return *configured, "next-version", nil
	}

	return next, source, nil
}

func onTaggedCommit(ctx Context) bool {
	return ctx.Latest != nil && ctx.CommitsSinceTag == 0
}
