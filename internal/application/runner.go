package application

import (
	"context"
	"fmt"

	domainconfig "github.com/truewebber/gitver/internal/domain/config"
	"github.com/truewebber/gitver/internal/domain/paths"
	"github.com/truewebber/gitver/internal/domain/version"
	"github.com/truewebber/gitver/internal/log"
)

//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks_test.go -package application_test
type ConfigLocator interface {
	Verify(workingDir, projectRoot string) error
}

type ConfigProvider interface {
	ProvideForDirectory(ctx context.Context, dir string) (domainconfig.Config, string, error)
	WriteDefault(dir string) (string, error)
}

// Repository reads versioning state from the underlying repository. Tags are
// sorted ascending by version.
type Repository interface {
	WorkingDir() string
	RootDir() string
	CurrentBranch() (string, error)
	Head() (version.Commit, error)
	Tags(prefix string) ([]version.TaggedVersion, error)
	CommitsSince(sha string) (int, error)
}

type Runner struct {
	logger   log.Logger
	locator  ConfigLocator
	provider ConfigProvider
	repo     Repository
}

func NewRunner(
	logger log.Logger,
	locator ConfigLocator,
	provider ConfigProvider,
	repo Repository,
) *Runner {
	return &Runner{
		logger:   logger,
		locator:  locator,
		provider: provider,
		repo:     repo,
	}
}

// ComputeVersion verifies the configuration selection, loads the effective
// configuration and derives the version for the current repository state.
// Selection warnings are returned unwrapped.
func (r *Runner) ComputeVersion(ctx context.Context) (version.Result, error) {
	if err := r.locator.Verify(r.repo.WorkingDir(), r.repo.RootDir()); err != nil {
		return version.Result{}, err
	}

	cfg, origin, err := r.effectiveConfig(ctx)
	if err != nil {
		return version.Result{}, err
	}

	if origin == "" {
		r.logger.Debug("No configuration file found, using defaults")
	} else {
		r.logger.Debug("Using configuration file", "path", origin)
	}

	branch, branchErr := r.repo.CurrentBranch()
	if branchErr != nil {
		return version.Result{}, fmt.Errorf("current branch: %w", branchErr)
	}

	head, headErr := r.repo.Head()
	if headErr != nil {
		return version.Result{}, fmt.Errorf("resolve head: %w", headErr)
	}

	tags, tagsErr := r.repo.Tags(cfg.TagPrefix)
	if tagsErr != nil {
		return version.Result{}, fmt.Errorf("list tags: %w", tagsErr)
	}

	latest := latestTag(tags)

	commitsSinceTag := 0

	if latest != nil {
		commits, sinceErr := r.repo.CommitsSince(latest.Sha)
		if sinceErr != nil {
			return version.Result{}, fmt.Errorf("commits since %s: %w", latest.Name, sinceErr)
		}

		commitsSinceTag = commits
	}

	branchConfig := cfg.BranchConfigFor(branch)

	result, calcErr := version.Calculate(
		version.Spec{
			NextVersion: cfg.NextVersion,
			Increment:   branchConfig.Increment,
			Label:       branchConfig.Label,
		},
		version.Context{
			Branch:          branch,
			Latest:          latest,
			CommitsSinceTag: commitsSinceTag,
			Sha:             head.Sha,
			ShortSha:        head.ShortSha,
		},
	)
	if calcErr != nil {
		return version.Result{}, fmt.Errorf("calculate version: %w", calcErr)
	}

	return result, nil
}

// VerifyConfiguration checks that the configuration file selection is
// unambiguous for the working directory and the repository root. Selection
// warnings are returned unwrapped.
func (r *Runner) VerifyConfiguration() error {
	return r.locator.Verify(r.repo.WorkingDir(), r.repo.RootDir())
}

func (r *Runner) InitConfiguration() (string, error) {
	path, err := r.provider.WriteDefault(r.repo.RootDir())
	if err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}

	return path, nil
}

func (r *Runner) ShowConfiguration(ctx context.Context) (domainconfig.Config, string, error) {
	return r.effectiveConfig(ctx)
}

// effectiveConfig prefers a configuration file in the working directory and
// falls back to the repository root.
func (r *Runner) effectiveConfig(ctx context.Context) (domainconfig.Config, string, error) {
	cfg, origin, err := r.provider.ProvideForDirectory(ctx, r.repo.WorkingDir())
	if err != nil {
		return domainconfig.Config{}, "", fmt.Errorf("provide config: %w", err)
	}

	if origin != "" || paths.Equal(r.repo.WorkingDir(), r.repo.RootDir()) {
		return cfg, origin, nil
	}

	rootConfig, rootOrigin, rootErr := r.provider.ProvideForDirectory(ctx, r.repo.RootDir())
	if rootErr != nil {
		return domainconfig.Config{}, "", fmt.Errorf("provide config: %w", rootErr)
	}

	return rootConfig, rootOrigin, nil
}

func latestTag(tags []version.TaggedVersion) *version.TaggedVersion {
	if len(tags) == 0 {
		return nil
	}

	return &tags[len(tags)-1]
}
