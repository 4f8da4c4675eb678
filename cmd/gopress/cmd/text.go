package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/gopress/codec/jsonx"
	gperror "github.com/msto63/gopress/core/error"
	"github.com/msto63/gopress/utils/mathx"
	"github.com/msto63/gopress/utils/slicex"
	"github.com/msto63/gopress/utils/stringx"
	"github.com/msto63/gopress/utils/timex"
)

var (
	truncateLength int
	ipv4Strict     bool
	chunkSize      int
)

var stringCmd = &cobra.Command{
	Use:   "string",
	Short: "String helpers",
	Long: `String helpers.

Examples:
  gopress string slug "Hello, World!"
  gopress string truncate -n 5 "Hello, World!"
  gopress string camel user_id
  gopress string bool TRUE`,
}

// textCommand builds a subcommand applying fn to the joined arguments
func textCommand(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <text>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), fn(strings.Join(args, " ")))
		},
	}
}

func boolText(b bool) string {
	return strconv.FormatBool(b)
}

var truncateCmd = &cobra.Command{
	Use:   "truncate <text>",
	Short: "Truncate to n characters, appending an ellipsis when shortened",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), stringx.Truncate(strings.Join(args, " "), truncateLength))
	},
}

var ipv4Cmd = &cobra.Command{
	Use:   "ipv4 <address>",
	Short: "Validate an IPv4 address",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		valid := stringx.IsValidIPv4(args[0])
		if ipv4Strict {
			valid = stringx.IsValidIPv4Strict(args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), valid)
	},
}

var intCmd = &cobra.Command{
	Use:   "int <roman|factorial|prime|parity> <n>",
	Short: "Integer helpers",
	Args:  cobra.ExactArgs(2),
	RunE:  runInt,
}

var hexCmd = &cobra.Command{
	Use:   "hex <text>",
	Short: "Render text bytes as lowercase hex",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), jsonx.HexString([]byte(strings.Join(args, " "))))
	},
}

var chunkCmd = &cobra.Command{
	Use:   "chunk <item>...",
	Short: "Split items into groups of --size",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if chunkSize <= 0 {
			return gperror.New("size must be positive").WithCode(gperror.CodeInvalidInput)
		}
		out, ok := jsonx.EncodeString(slicex.Chunk(args, chunkSize))
		if !ok {
			return gperror.New("failed to encode chunks").WithCode(gperror.CodeEncodingError)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Time helpers",
}

var mmssCmd = &cobra.Command{
	Use:   "mmss <seconds>",
	Short: "Format seconds as mm:ss",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return gperror.Wrap(err, "invalid seconds").WithCode(gperror.CodeInvalidInput)
		}
		fmt.Fprintln(cmd.OutOrStdout(), timex.FormatMinutesSeconds(seconds))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stringCmd, intCmd, hexCmd, chunkCmd, timeCmd)
	timeCmd.AddCommand(mmssCmd)

	stringCmd.AddCommand(
		textCommand("slug", "Lowercase, hyphenated slug", stringx.Slugify),
		textCommand("camel", "snake_case to CamelCase", stringx.SnakeToCamelCase),
		textCommand("snake", "CamelCase to snake_case", stringx.CamelToSnakeCase),
		textCommand("capitalize", "Capitalize each word", stringx.CapitalizeEachWord),
		textCommand("base64", "Base64 of the UTF-8 bytes", stringx.ToBase64),
		textCommand("email", "Validate an email address", func(s string) string {
			return boolText(stringx.IsValidEmail(s))
		}),
		textCommand("bool", "Parse a boolean; only \"true\" in any case is true", func(s string) string {
			return boolText(stringx.BoolValue(s))
		}),
		truncateCmd,
		ipv4Cmd,
	)
	truncateCmd.Flags().IntVarP(&truncateLength, "length", "n", 10, "maximum length")
	ipv4Cmd.Flags().BoolVar(&ipv4Strict, "strict", false, "reject octets above 255")
	chunkCmd.Flags().IntVarP(&chunkSize, "size", "s", 2, "chunk size")
}

func runInt(cmd *cobra.Command, args []string) error {
	n, ok := stringx.SafeToInt(args[1])
	if !ok {
		return gperror.New(fmt.Sprintf("not an integer: %q", args[1])).WithCode(gperror.CodeInvalidInput)
	}

	out := cmd.OutOrStdout()
	switch args[0] {
	case "roman":
		roman := mathx.RomanNumeral(n)
		if roman == "" {
			return gperror.New("roman numerals need a positive number").WithCode(gperror.CodeInvalidInput)
		}
		fmt.Fprintln(out, roman)
	case "factorial":
		f, ok := mathx.Factorial(n)
		if !ok {
			return gperror.New(fmt.Sprintf("factorial of %d is undefined", n)).WithCode(gperror.CodeInvalidInput)
		}
		fmt.Fprintln(out, f)
	case "prime":
		fmt.Fprintln(out, mathx.IsPrime(n))
	case "parity":
		if mathx.IsEven(n) {
			fmt.Fprintln(out, "even")
		} else {
			fmt.Fprintln(out, "odd")
		}
	default:
		return gperror.New(fmt.Sprintf("unknown operation %q", args[0])).WithCode(gperror.CodeInvalidInput)
	}
	return nil
}
