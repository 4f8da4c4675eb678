package cmd

import (
	"embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/gopress/core/config"
	"github.com/msto63/gopress/core/i18n"
)

//go:embed locales/*.toml
var embeddedLocales embed.FS

const (
	msgDefaultsMissing  i18n.Key = "defaults.missing"
	msgPreviewTitle     i18n.Key = "preview.title"
	msgPreviewIdle      i18n.Key = "preview.idle"
	msgPreviewWorking   i18n.Key = "preview.working"
	msgPreviewHeartbeat i18n.Key = "preview.heartbeat"
	msgPreviewAlert     i18n.Key = "preview.alert"
	msgPreviewHelp      i18n.Key = "preview.help"
)

func init() {
	bundle, err := i18n.Load(embeddedLocales, "locales", "en")
	if err != nil {
		panic(fmt.Sprintf("gopress: embedded locales: %v", err))
	}
	i18n.SetDefault(bundle)
}

// loadMessages installs the message bundle selected by s. A configured
// directory replaces the embedded messages.
func loadMessages(s config.Settings) error {
	var bundle *i18n.Bundle
	var err error
	if s.LocalesDir != "" {
		bundle, err = i18n.Load(os.DirFS(s.LocalesDir), ".", "en")
	} else {
		bundle, err = i18n.Load(embeddedLocales, "locales", "en")
	}
	if err != nil {
		return err
	}

	// Match always returns an available locale
	_ = bundle.SetLocale(bundle.Match(s.Locale))
	i18n.SetDefault(bundle)
	return nil
}

var localizeCmd = &cobra.Command{
	Use:   "localize <key> [param]",
	Short: "Print the localized message for key",
	Long: `Print the localized message for key in the configured locale.

The locale is taken from i18n.locale (GOPRESS_I18N_LOCALE) and may be any
Accept-Language value such as "de-CH, en;q=0.5". i18n.dir points at a
directory of <locale>.toml or <locale>.yaml message files replacing the
built-in messages. A missing key prints the key itself.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		key := i18n.Key(args[0])
		if len(args) == 2 {
			fmt.Fprintln(cmd.OutOrStdout(), key.LocalizedWith(args[1]))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), key.Localized())
	},
}

func init() {
	rootCmd.AddCommand(localizeCmd)
}
