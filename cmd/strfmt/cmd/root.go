package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rahmatulah12/strfmt"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "strfmt",
		Short: "String formatting helpers",
		Long: `strfmt formats and masks strings from the command line.

Text commands take their input as the only argument, or read it from
stdin when no argument is given.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newCapitalizeCmd(),
		newTextCmd("camel", "Convert snake_case or kebab-case to camelCase", strfmt.CamelCase),
		newTextCmd("pascal", "Convert snake_case or kebab-case to PascalCase", strfmt.PascalCase),
		newTextCmd("snake", "Convert camelCase to snake_case", strfmt.SnakeCase),
		newTextCmd("kebab", "Convert camelCase to kebab-case", strfmt.KebabCase),
		newTextCmd("trim", "Strip leading and trailing white space", strfmt.Trim),
		newEmptyCmd(),
		newTruncateCmd(),
		newMaskCmd(),
		newRedactCmd(),
		newVersionCmd(),
	)

	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

// input returns the single argument or, without one, stdin minus its final
// line break.
func input(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

func printResult(cmd *cobra.Command, s string) {
	fmt.Fprintln(cmd.OutOrStdout(), s)
}
