package configinfra

import (
	domainconfig "github.com/truewebber/gitver/internal/domain/config"
	"github.com/truewebber/gitver/internal/domain/paths"
	"github.com/truewebber/gitver/internal/infrastructure/filesystem"
)

// Locator decides which configuration file governs a run.
//
// Verify is the strict entry point: it inspects the working directory and the
// repository root together and fails when the selection is ambiguous or, for
// an explicitly named file, when the file is missing. Resolve is the lenient
// per-directory lookup backing the provider; it never fails.
type Locator interface {
	Verify(workingDir, projectRoot string) error
	Resolve(dir string) (path string, found bool)
}

// NewLocator picks the location strategy once from the caller-supplied
// selection: an explicit configuration file engages the named strategy,
// otherwise the well-known default file names are searched.
func NewLocator(fs filesystem.FileSystem, info domainconfig.Info) Locator {
	if info.HasConfigFile() {
		return NewNamedLocator(fs, info.ConfigFile)
	}

	return NewDefaultLocator(fs)
}

// DefaultLocator searches for the well-known configuration file names.
type DefaultLocator struct {
	fs filesystem.FileSystem
}

func NewDefaultLocator(fs filesystem.FileSystem) *DefaultLocator {
	return &DefaultLocator{fs: fs}
}

// Resolve returns the first existing candidate in dir. DefaultFileName is
// preferred over DefaultAlternativeFileName.
func (l *DefaultLocator) Resolve(dir string) (string, bool) {
	for _, name := range domainconfig.DefaultCandidates() {
		candidate := paths.Normalize(paths.Combine(dir, name))
		if l.fs.Exists(candidate) {
			return candidate, true
		}
	}

	return "", false
}

// Verify fails when the working directory and the repository root hold
// distinct configuration files at the same time. Absence is never an error
// here.
func (l *DefaultLocator) Verify(workingDir, projectRoot string) error {
	if paths.Equal(workingDir, projectRoot) {
		return nil
	}

	workingCandidate, workingFound := l.Resolve(workingDir)
	projectCandidate, projectFound := l.Resolve(projectRoot)

	if workingFound && projectFound && !paths.Equal(workingCandidate, projectCandidate) {
		return &AmbiguousConfigFileError{
			WorkingCandidate: workingCandidate,
			ProjectCandidate: projectCandidate,
		}
	}

	return nil
}

// NamedLocator searches for one explicitly named configuration file. The name
// may be a plain file name, a relative path or an absolute path.
type NamedLocator struct {
	fs   filesystem.FileSystem
	file string
}

func NewNamedLocator(fs filesystem.FileSystem, file string) *NamedLocator {
	return &NamedLocator{fs: fs, file: file}
}

// Resolve returns the named file anchored at dir when it exists there.
// Nothing is reported otherwise, even if the file exists somewhere else.
func (l *NamedLocator) Resolve(dir string) (string, bool) {
	candidate := l.candidate(dir)
	if l.fs.Exists(candidate) {
		return candidate, true
	}

	return "", false
}

// Verify requires the named file at the working directory or the repository
// root and fails when distinct files exist at both. When both directories are
// the same location only the working candidate is evaluated, so the selection
// is never ambiguous there.
func (l *NamedLocator) Verify(workingDir, projectRoot string) error {
	workingCandidate := l.candidate(workingDir)

	if paths.Equal(workingDir, projectRoot) {
		if l.fs.Exists(workingCandidate) {
			return nil
		}

		return &ConfigFileNotFoundError{
			WorkingCandidate: workingCandidate,
			ProjectCandidate: workingCandidate,
		}
	}

	projectCandidate := l.candidate(projectRoot)

	workingExists := l.fs.Exists(workingCandidate)
	projectExists := l.fs.Exists(projectCandidate)

	switch {
	case workingExists && projectExists && !paths.Equal(workingCandidate, projectCandidate):
		return &AmbiguousConfigFileError{
			WorkingCandidate: workingCandidate,
			ProjectCandidate: projectCandidate,
		}
	case !workingExists && !projectExists:
		return &ConfigFileNotFoundError{
			WorkingCandidate: workingCandidate,
			ProjectCandidate: projectCandidate,
		}
	default:
		return nil
	}
}

func (l *NamedLocator) candidate(dir string) string {
	return paths.Normalize(paths.Combine(dir, l.file))
}
