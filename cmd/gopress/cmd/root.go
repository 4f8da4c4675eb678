package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/gopress/core/config"
	"github.com/msto63/gopress/core/log"
)

var (
	cfgFile  string
	verbose  bool
	settings = config.DefaultSettings()
)

var rootCmd = &cobra.Command{
	Use:   "gopress",
	Short: "gopress - helper toolbox",
	Long: `gopress exposes the gopress helper library on the command line.

Commands:
  string    - slugs, truncation, case conversion, validation
  int       - roman numerals, factorials, primes
  hex       - hex rendering of text
  chunk     - split items into fixed-size groups
  time      - interval formatting
  defaults  - typed key-value store (memory, sqlite, postgres, s3)
  fetch     - HTTP GET with status checking
  html      - render HTML as terminal text
  color     - parse hex colors
  preview   - interactive widget preview
  localize  - look up localized messages`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (toml or yaml, env prefix GOPRESS)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setup loads settings and installs the default logger
func setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Empty(config.EnvPrefix)
	if cfgFile != "" {
		loaded, err := config.LoadWithOptions(cfgFile, config.LoadOptions{EnvPrefix: config.EnvPrefix})
		if err != nil {
			return err
		}
		cfg = loaded
	}

	s, err := config.LoadSettings(cfg)
	if err != nil {
		return err
	}
	settings = s

	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return err
	}
	if verbose {
		level = log.LevelDebug
	}
	format, err := log.ParseFormat(s.LogFormat)
	if err != nil {
		return err
	}
	log.SetDefault(log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   "gopress",
	}))
	log.Debug("settings loaded", log.Fields{
		"config":          cfgFile,
		"defaults_driver": s.DefaultsDriver,
		"locale":          s.Locale,
	})
	return loadMessages(s)
}

func printError(cmd *cobra.Command, msg string, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "error: %s: %v\n", msg, err)
}
