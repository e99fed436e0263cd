package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Rahmatulah12/strfmt"
)

// newTextCmd wraps a total string transformation as a subcommand.
func newTextCmd(use, short string, fn func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [text]",
		Short: short,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args)
			if err != nil {
				return err
			}
			printResult(cmd, fn(s))
			return nil
		},
	}
}

func newCapitalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "capitalize [text]",
		Short: "Upper-case the first character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args)
			if err != nil {
				return err
			}

			out, err := strfmt.Capitalize(s)
			if err != nil {
				return err
			}

			printResult(cmd, out)
			return nil
		},
	}
}

func newEmptyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "empty [text]",
		Short: "Print true when the text is empty or only white space",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args)
			if err != nil {
				return err
			}
			printResult(cmd, strconv.FormatBool(strfmt.IsEmpty(s)))
			return nil
		},
	}
}

func newTruncateCmd() *cobra.Command {
	var (
		maxLength int
		suffix    string
	)

	c := &cobra.Command{
		Use:   "truncate [text]",
		Short: "Shorten text to a maximum number of characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args)
			if err != nil {
				return err
			}
			printResult(cmd, strfmt.TruncateWith(s, maxLength, suffix))
			return nil
		},
	}

	c.Flags().IntVarP(&maxLength, "max", "m", 0, "maximum length including the suffix")
	c.Flags().StringVarP(&suffix, "suffix", "s", strfmt.DefaultTruncateSuffix, "text appended when truncating")
	_ = c.MarkFlagRequired("max")

	return c
}

func newMaskCmd() *cobra.Command {
	cfg := strfmt.DefaultMaskConfig()

	c := &cobra.Command{
		Use:   "mask [text]",
		Short: "Hide the middle of a sensitive value",
		Example: `  strfmt mask 13812345678
  strfmt mask --prefix 1 --suffix 1 张三李四王五`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := input(cmd, args)
			if err != nil {
				return err
			}

			out, err := cfg.Mask(s)
			if err != nil {
				return err
			}

			printResult(cmd, out)
			return nil
		},
	}

	c.Flags().IntVar(&cfg.PrefixLength, "prefix", cfg.PrefixLength, "characters kept at the start")
	c.Flags().IntVar(&cfg.SuffixLength, "suffix", cfg.SuffixLength, "characters kept at the end")
	c.Flags().IntVar(&cfg.MaskCharCount, "count", cfg.MaskCharCount, "number of mask characters")

	return c
}
