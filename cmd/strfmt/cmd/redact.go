package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rahmatulah12/strfmt"
)

func newRedactCmd() *cobra.Command {
	var rulesFile string

	c := &cobra.Command{
		Use:   "redact [json]",
		Short: "Mask configured fields of a JSON document",
		Long: `Mask configured fields of a JSON document.

The rules file is YAML:

  rules:
    - field: password
      prefix_length: 0
      suffix_length: 0
    - field: msisdn`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(rulesFile)
			if err != nil {
				return fmt.Errorf("open rules: %w", err)
			}
			defer f.Close()

			rules, err := strfmt.LoadMaskRules(f)
			if err != nil {
				return err
			}

			r, err := strfmt.NewRedactor(rules...)
			if err != nil {
				return err
			}

			doc, err := input(cmd, args)
			if err != nil {
				return err
			}

			out, err := r.RedactJSON([]byte(doc))
			if err != nil {
				return err
			}

			printResult(cmd, string(out))
			return nil
		},
	}

	c.Flags().StringVarP(&rulesFile, "rules", "r", "", "YAML file with mask rules")
	_ = c.MarkFlagRequired("rules")

	return c
}
