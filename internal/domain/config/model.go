package config

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"

	"github.com/truewebber/gitver/internal/domain/version"
)

// ErrInvalidBranchPattern reports a branches key that is not a valid glob
// pattern.
var ErrInvalidBranchPattern = errors.New("invalid branch pattern")

var (
	transformer = modifiers.New()
	validate    = validator.New()
)

// Config is the effective gitver configuration for a repository.
type Config struct {
	NextVersion string                  `yaml:"next-version,omitempty" mod:"trim" validate:"omitempty,semver"`
	TagPrefix   string                  `yaml:"tag-prefix" mod:"trim"`
	Increment   version.Increment       `yaml:"increment" mod:"trim,lcase" validate:"omitempty,oneof=major minor patch"`
	Branches    map[string]BranchConfig `yaml:"branches,omitempty" mod:"dive" validate:"dive"`
}

// BranchConfig adjusts versioning for branches matching its pattern.
type BranchConfig struct {
	Increment version.Increment `yaml:"increment,omitempty" mod:"trim,lcase" validate:"omitempty,oneof=major minor patch inherit"`
	Label     string            `yaml:"label,omitempty" mod:"trim"`
}

// Default returns the built-in configuration used when no configuration file
// is available.
func Default() Config {
	return Config{
		TagPrefix: "v",
		Increment: version.IncrementPatch,
		Branches: map[string]BranchConfig{
			"main":      {},
			"develop":   {Label: "alpha"},
			"feature/*": {Increment: version.IncrementInherit, Label: "alpha"},
			"release/*": {Label: "beta"},
			"hotfix/*":  {Increment: version.IncrementPatch, Label: "beta"},
		},
	}
}

// BranchConfigFor selects the configuration of the first pattern matching the
// branch name. Longer patterns are tried first, ties broken lexicographically,
// so selection is deterministic. Unmatched branches inherit the top-level
// settings.
func (c Config) BranchConfigFor(branch string) BranchConfig {
	for _, pattern := range c.sortedPatterns() {
		matched, err := doublestar.Match(pattern, branch)
		if err != nil || !matched {
			continue
		}

		selected := c.Branches[pattern]
		if selected.Increment == "" || selected.Increment == version.IncrementInherit {
			selected.Increment = c.Increment
		}

		return selected
	}

	return BranchConfig{Increment: c.Increment}
}

func (c Config) sortedPatterns() []string {
	patterns := make([]string, 0, len(c.Branches))
	for pattern := range c.Branches {
		patterns = append(patterns, pattern)
	}

	sort.Slice(patterns, func(i, j int) bool {
		if len(patterns[i]) != len(patterns[j]) {
			return len(patterns[i]) > len(patterns[j])
		}

		return patterns[i] < patterns[j]
	})

	return patterns
}

// Finalize applies string transforms and validates the configuration,
// including branch pattern syntax.
func (c *Config) Finalize(ctx context.Context) error {
	if err := transformer.Struct(ctx, c); err != nil {
		return fmt.Errorf("transform configuration: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validate configuration: %w", err)
	}

	for pattern := range c.Branches {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrInvalidBranchPattern, pattern)
		}
	}

	return nil
}
