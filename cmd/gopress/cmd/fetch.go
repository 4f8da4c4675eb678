package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/gopress/codec/jsonx"
	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/net/fetch"
)

var (
	fetchTimeout time.Duration
	fetchPretty  bool
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "GET a URL and print the body of a 2xx response",
	Long: `GET a URL and print the body of a 2xx response.

Non-2xx responses and transport failures exit with an error. The timeout
defaults to fetch.timeout from the configuration.

Examples:
  gopress fetch https://example.com
  gopress fetch --pretty https://api.github.com`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 0, "request timeout (default from config)")
	fetchCmd.Flags().BoolVar(&fetchPretty, "pretty", false, "indent JSON bodies")
}

func runFetch(cmd *cobra.Command, args []string) error {
	timeout := settings.FetchTimeout
	if fetchTimeout > 0 {
		timeout = fetchTimeout
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	client := fetch.New(fetch.WithTimeout(timeout))

	body, resp, err := client.Data(ctx, args[0])
	if err != nil {
		if resp != nil {
			return gperror.Wrap(err, resp.Status).
				WithCode(gperror.CodeInvalidResponse).
				WithDetail("url", args[0])
		}
		return gperror.Wrap(err, "request failed").WithCode(gperror.CodeNetworkError)
	}

	if fetchPretty && json.Valid(body) {
		if v, ok := jsonx.Decode[json.RawMessage](body); ok {
			if pretty, ok := jsonx.Encode(v); ok {
				body = pretty
			}
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(body))
	return nil
}
