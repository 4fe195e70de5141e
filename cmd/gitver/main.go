package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/thediveo/enumflag/v2"
	"gopkg.in/yaml.v3"

	"github.com/truewebber/gitver/internal/application"
	domainconfig "github.com/truewebber/gitver/internal/domain/config"
	configinfra "github.com/truewebber/gitver/internal/infrastructure/config"
	"github.com/truewebber/gitver/internal/infrastructure/filesystem"
	"github.com/truewebber/gitver/internal/infrastructure/repository"
	"github.com/truewebber/gitver/internal/log"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitWarning = 2
)

const envPrefix = "gitver"

func main() {
	cmd := newRootCommand()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	switch {
	case err == nil:
		return exitSuccess
	case configinfra.IsWarning(err):
		return exitWarning
	default:
		return exitFailure
	}
}

type options struct {
	env     *viper.Viper
	config  string
	path    string
	verbose bool
	full    bool
	output  application.OutputFormat
}

// configFile resolves the explicit configuration file from the --config flag
// or the GITVER_CONFIG environment variable, the flag winning.
func (o *options) configFile() string {
	return o.env.GetString("config")
}

func newRootCommand() *cobra.Command {
	opts := &options{env: viper.New()}

	cmd := &cobra.Command{
		Use:   "gitver",
		Short: "Semantic versions derived from git history",
		Long: `gitver derives a semantic version from the state of a git repository.

The version is computed from the latest version tag, the number of commits
since that tag, and per-branch rules from an optional configuration file
(gitver.yml or gitver.yaml) looked up in the working directory and the
repository root. An explicit file can be set with --config or GITVER_CONFIG.

Exit codes:
  0 - success
  1 - operational failure
  2 - configuration selection warning`,
		Example: `  gitver
  gitver --full
  gitver --output json
  gitver verify
  gitver init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "configuration file name or path")
	cmd.PersistentFlags().StringVarP(&opts.path, "path", "p", ".", "path to the repository")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.Flags().BoolVarP(&opts.full, "full", "f", false, "print the full version including build metadata")
	cmd.Flags().VarP(
		enumflag.New(&opts.output, "output", outputFormats, enumflag.EnumCaseInsensitive),
		"output", "o", "output format {text,json}")

	opts.env.SetEnvPrefix(envPrefix)
	opts.env.AutomaticEnv()
	_ = opts.env.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))

	cmd.AddCommand(newVerifyCommand(opts), newInitCommand(opts), newConfigCommand(opts))

	return cmd
}

var outputFormats = map[application.OutputFormat][]string{
	application.OutputText: {"text"},
	application.OutputJSON: {"json"},
}

func newVerifyCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the configuration file selection is unambiguous",
		RunE: func(_ *cobra.Command, _ []string) error {
			runner, logger, err := buildRunner(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runner.VerifyConfiguration()
		},
	}
}

func newInitCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file to the repository root",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, logger, err := buildRunner(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			path, initErr := runner.InitConfiguration()
			if initErr != nil {
				return initErr
			}

			fmt.Fprintln(cmd.OutOrStdout(), path)

			return nil
		},
	}
}

func newConfigCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, logger, err := buildRunner(opts)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, origin, showErr := runner.ShowConfiguration(cmd.Context())
			if showErr != nil {
				return showErr
			}

			if origin != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", origin)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "# built-in defaults")
			}

			data, marshalErr := yaml.Marshal(cfg)
			if marshalErr != nil {
				return fmt.Errorf("marshal config: %w", marshalErr)
			}

			fmt.Fprint(cmd.OutOrStdout(), string(data))

			return nil
		},
	}
}

func runCompute(cmd *cobra.Command, opts *options) error {
	runner, logger, err := buildRunner(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	result, computeErr := runner.ComputeVersion(cmd.Context())
	if computeErr != nil {
		return computeErr
	}

	output, formatErr := application.FormatResult(result, opts.output, opts.full)
	if formatErr != nil {
		return formatErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), output)

	return nil
}

func buildRunner(opts *options) (*application.Runner, *log.ZapLogger, error) {
	logger := log.NewZapLogger(opts.verbose)

	repo, err := repository.Open(opts.path)
	if err != nil {
		return nil, nil, fmt.Errorf("open repository: %w", err)
	}

	fs := filesystem.NewOS()
	info := domainconfig.Info{ConfigFile: opts.configFile()}
	locator := configinfra.NewLocator(fs, info)
	provider := configinfra.NewProvider(logger, fs, locator)

	return application.NewRunner(logger, locator, provider, repo), logger, nil
}
