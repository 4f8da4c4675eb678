package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/store/defaults"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Typed key-value store",
	Long: `Reads and writes JSON values in the configured defaults backend.

The backend comes from the config file or GOPRESS_DEFAULTS_* variables:
  defaults.driver  memory | sqlite | postgres | s3
  defaults.dsn     sqlite path or postgres DSN
  defaults.bucket  s3 bucket
  defaults.prefix  s3 key prefix

The memory backend does not outlive the process.

Examples:
  GOPRESS_DEFAULTS_DRIVER=sqlite GOPRESS_DEFAULTS_DSN=./prefs.db gopress defaults set theme '"dark"'
  gopress --config gopress.toml defaults get theme`,
}

var defaultsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value stored under key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(s defaults.Store) error {
			v, ok := defaults.GetObject[json.RawMessage](cmd.Context(), s, args[0])
			if !ok {
				return gperror.New(msgDefaultsMissing.LocalizedWith(strconv.Quote(args[0]))).WithCode(gperror.CodeNotFound)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(v))
			return nil
		})
	},
}

var defaultsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store value under key; values that are not JSON are stored as strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var value any = args[1]
		if json.Valid([]byte(args[1])) {
			value = json.RawMessage(args[1])
		}
		return withStore(cmd.Context(), func(s defaults.Store) error {
			return defaults.SetObject(cmd.Context(), s, args[0], value)
		})
	},
}

var defaultsDeleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Remove key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd.Context(), func(s defaults.Store) error {
			return s.Delete(cmd.Context(), args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	defaultsCmd.AddCommand(defaultsGetCmd, defaultsSetCmd, defaultsDeleteCmd)
}

func withStore(ctx context.Context, fn func(defaults.Store) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := defaults.Open(ctx, settings)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}
