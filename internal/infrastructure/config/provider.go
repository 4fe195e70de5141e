package configinfra

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	domainconfig "github.com/truewebber/gitver/internal/domain/config"
	"github.com/truewebber/gitver/internal/domain/paths"
	"github.com/truewebber/gitver/internal/infrastructure/filesystem"
	"github.com/truewebber/gitver/internal/log"
)

// ErrConfigFileExists reports an init attempt where a configuration file
// already resolves.
var ErrConfigFileExists = errors.New("configuration file already exists")

const starterHeader = "# gitver configuration\n# https://github.com/truewebber/gitver\n\n"

// Provider turns located configuration files into effective configuration.
// Absence is not an error: built-in defaults apply.
type Provider struct {
	logger  log.Logger
	fs      filesystem.WritableFileSystem
	locator Locator
}

func NewProvider(logger log.Logger, fs filesystem.WritableFileSystem, locator Locator) *Provider {
	return &Provider{
		logger:  logger,
		fs:      fs,
		locator: locator,
	}
}

// ProvideForDirectory returns the effective configuration for dir and the
// path of the file it came from. The path is empty when built-in defaults are
// in effect.
func (p *Provider) ProvideForDirectory(ctx context.Context, dir string) (domainconfig.Config, string, error) {
	path, found := p.locator.Resolve(dir)
	if !found {
		p.logger.Debug("No configuration file found, using built-in defaults", "directory", dir)

		return domainconfig.Default(), "", nil
	}

	text, err := p.fs.ReadText(path)
	if err != nil {
		return domainconfig.Config{}, "", fmt.Errorf("read configuration %s: %w", path, err)
	}

	if !domainconfig.HasContent([]byte(text)) {
		p.logger.Debug("Configuration file has no content, using built-in defaults", "path", path)

		return domainconfig.Default(), path, nil
	}

	cfg, err := p.effectiveConfig(ctx, path, []byte(text))
	if err != nil {
		return domainconfig.Config{}, "", err
	}

	return cfg, path, nil
}

// WriteDefault materializes the built-in defaults as a starter configuration
// file in dir. It refuses to shadow a configuration file that already
// resolves there.
func (p *Provider) WriteDefault(dir string) (string, error) {
	if existing, found := p.locator.Resolve(dir); found {
		return "", fmt.Errorf("%w: %s", ErrConfigFileExists, existing)
	}

	body, err := yaml.Marshal(domainconfig.Default())
	if err != nil {
		return "", fmt.Errorf("encode default configuration: %w", err)
	}

	path := paths.Normalize(paths.Combine(dir, domainconfig.DefaultFileName))
	if writeErr := p.fs.WriteText(path, starterHeader+string(body)); writeErr != nil {
		return "", fmt.Errorf("write starter configuration: %w", writeErr)
	}

	p.logger.Info("Wrote starter configuration", "path", path)

	return path, nil
}

func (p *Provider) effectiveConfig(ctx context.Context, path string, data []byte) (domainconfig.Config, error) {
	document, err := domainconfig.NormalizeYAML(data)
	if err != nil {
		return domainconfig.Config{}, fmt.Errorf("parse configuration %s: %w", path, err)
	}

	defaults, err := domainconfig.DefaultsDocument()
	if err != nil {
		return domainconfig.Config{}, fmt.Errorf("defaults document: %w", err)
	}

	cfg, err := domainconfig.Decode(domainconfig.Merge(defaults, document))
	if err != nil {
		return domainconfig.Config{}, fmt.Errorf("decode configuration %s: %w", path, err)
	}

	if finalizeErr := cfg.Finalize(ctx); finalizeErr != nil {
		return domainconfig.Config{}, fmt.Errorf("finalize configuration %s: %w", path, finalizeErr)
	}

	return cfg, nil
}
