package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/richtext"
)

var htmlPlain bool

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Render HTML from a file or stdin as terminal text",
	Long: `Render HTML from a file or stdin as terminal text.

Examples:
  echo '<p>Hello <b>world</b></p>' | gopress html
  gopress html --plain page.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHTML,
}

func init() {
	rootCmd.AddCommand(htmlCmd)
	htmlCmd.Flags().BoolVar(&htmlPlain, "plain", false, "print text without styling")
}

func runHTML(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return gperror.Wrap(err, "failed to read input").WithCode(gperror.CodeInvalidInput)
	}

	s, ok := richtext.FromHTML(string(data))
	if !ok {
		return gperror.New("input is not valid UTF-8 HTML").WithCode(gperror.CodeInvalidFormat)
	}
	if htmlPlain {
		fmt.Fprintln(cmd.OutOrStdout(), s.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.Render())
	return nil
}
