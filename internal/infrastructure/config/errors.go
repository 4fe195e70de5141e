package configinfra

import (
	"errors"
	"fmt"
)

// AmbiguousConfigFileError reports distinct configuration files found at the
// working directory and the repository root at the same time.
type AmbiguousConfigFileError struct {
	WorkingCandidate string
	ProjectCandidate string
}

func (e *AmbiguousConfigFileError) Error() string {
	return fmt.Sprintf(
		"Ambiguous configuration file selection from '%s' and '%s'",
		e.WorkingCandidate, e.ProjectCandidate,
	)
}

func (*AmbiguousConfigFileError) configWarning() {}

// ConfigFileNotFoundError reports an explicitly named configuration file that
// exists at neither inspected location.
type ConfigFileNotFoundError struct {
	WorkingCandidate string
	ProjectCandidate string
}

func (e *ConfigFileNotFoundError) Error() string {
	return fmt.Sprintf(
		"The configuration file was not found at '%s' or '%s'",
		e.WorkingCandidate, e.ProjectCandidate,
	)
}

func (*ConfigFileNotFoundError) configWarning() {}

// warning marks error types that report a configuration selection problem
// rather than an operational failure.
type warning interface {
	error
	configWarning()
}

// IsWarning reports whether err is a configuration selection warning.
func IsWarning(err error) bool {
	var w warning

	return errors.As(err, &w)
}
