package repository

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/truewebber/gitver/internal/domain/version"
)

const shortShaLength = 7

var (
	ErrNotARepository = errors.New("not a git repository")
	ErrNoCommits      = errors.New("repository has no commits")
)

type GitRepository struct {
	repo       *git.Repository
	workingDir string
	rootDir    string
}

func Open(dir string) (*GitRepository, error) {
	workingDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("absolute path: %w", err)
	}

	repo, openErr := git.PlainOpenWithOptions(workingDir, &git.PlainOpenOptions{DetectDotGit: true})
	if openErr != nil {
		if errors.Is(openErr, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, workingDir)
		}

		return nil, fmt.Errorf("open repository: %w", openErr)
	}

	worktree, worktreeErr := repo.Worktree()
	if worktreeErr != nil {
		return nil, fmt.Errorf("worktree: %w", worktreeErr)
	}

	return &GitRepository{
		repo:       repo,
		workingDir: workingDir,
		rootDir:    worktree.Filesystem.Root(),
	}, nil
}

func (r *GitRepository) WorkingDir() string {
	return r.workingDir
}

func (r *GitRepository) RootDir() string {
	return r.rootDir
}

// CurrentBranch returns the short branch name, or an empty string on a
// detached head.
func (r *GitRepository) CurrentBranch() (string, error) {
	head, err := r.head()
	if err != nil {
		return "", err
	}

	if !head.Name().IsBranch() {
		return "", nil
	}

	return head.Name().Short(), nil
}

func (r *GitRepository) Head() (version.Commit, error) {
	head, err := r.head()
	if err != nil {
		return version.Commit{}, err
	}

	sha := head.Hash().String()

	return version.Commit{
		Sha:      sha,
		ShortSha: sha[:shortShaLength],
	}, nil
}

// Tags lists version tags sorted ascending. Tags missing the prefix or not
// parseable as a semantic version are skipped.
func (r *GitRepository) Tags(prefix string) ([]version.TaggedVersion, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	var tags []version.TaggedVersion

	forEachErr := iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()

		if prefix != "" && !strings.HasPrefix(name, prefix) {
			return nil
		}

		parsed, parseErr := semver.NewVersion(strings.TrimPrefix(name, prefix))
		if parseErr != nil {
			return nil
		}

		tags = append(tags, version.TaggedVersion{
			Name:    name,
			Version: parsed,
			Sha:     r.resolveTagTarget(ref).String(),
		})

		return nil
	})
	if forEachErr != nil {
		return nil, fmt.Errorf("iterate tags: %w", forEachErr)
	}

	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Version.LessThan(tags[j].Version)
	})

	return tags, nil
}

// CommitsSince counts commits reachable from the head up to, excluding, the
// given commit. An unreachable commit yields the full history length.
func (r *GitRepository) CommitsSince(sha string) (int, error) {
	head, err := r.head()
	if err != nil {
		return 0, err
	}

	iter, logErr := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if logErr != nil {
		return 0, fmt.Errorf("log: %w", logErr)
	}

	target := plumbing.NewHash(sha)
	count := 0

	forEachErr := iter.ForEach(func(commit *object.Commit) error {
		if commit.Hash == target {
			return storer.ErrStop
		}

		count++

		return nil
	})
	if forEachErr != nil {
		return 0, fmt.Errorf("walk history: %w", forEachErr)
	}

	return count, nil
}

// resolveTagTarget follows annotated tag objects to the commit they point at.
func (r *GitRepository) resolveTagTarget(ref *plumbing.Reference) plumbing.Hash {
	tagObject, err := r.repo.TagObject(ref.Hash())
	if err != nil {
		return ref.Hash()
	}

	return tagObject.Target
}

func (r *GitRepository) head() (*plumbing.Reference, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, ErrNoCommits
		}

		return nil, fmt.Errorf("resolve head: %w", err)
	}

	return head, nil
}
