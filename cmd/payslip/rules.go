package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ohad12345678/payslip/internal/bidi"
	"github.com/ohad12345678/payslip/internal/cli"
	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/pattern"
	"github.com/ohad12345678/payslip/internal/value"
)

func rulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect and check field extraction rules",
		Long: `Inspect the active rule table, validate a rules file, or see which rule
matches a field in a document.

A rules file replaces the pattern list of the fields it names:

  fields:
    - name: net_salary
      kind: amount
      patterns:
        - 'נטו לתשלום\s+([\d,]+\.\d{2})'`,
	}

	cmd.AddCommand(rulesListCmd())
	cmd.AddCommand(rulesValidateCmd())
	cmd.AddCommand(rulesTestCmd())

	return cmd
}

func rulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List fields of the active rule table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rules, err := pattern.Resolve(cfg.Parser.RulesFile)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(rules))
			for _, r := range rules {
				first := ""
				if len(r.Patterns) > 0 {
					first = r.Patterns[0]
				}
				rows = append(rows, []string{r.Name, string(r.Kind), fmt.Sprint(len(r.Patterns)), first})
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.Table([]string{"Field", "Kind", "Patterns", "First pattern"}, rows))
			return nil
		},
	}
}

func rulesValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a rules file against the schema and the built-in fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := pattern.LoadFile(args[0])
			if err != nil {
				return common.NewUserError("rules file is invalid", err)
			}
			merged, err := pattern.DefaultRules().Merge(overrides)
			if err != nil {
				return common.NewUserError("rules file is invalid", err)
			}
			if _, err := pattern.Compile(merged); err != nil {
				return common.NewUserError("rules file is invalid", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s: %d fields overridden", args[0], len(overrides))))
			return nil
		},
	}
}

func rulesTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test <field> <file>",
		Short: "Show which pattern of a field matches in each statement",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			parser, err := newParser(cfg)
			if err != nil {
				return err
			}
			kind, ok := parser.Table().Kind(field)
			if !ok {
				return common.NewUserError(fmt.Sprintf("unknown field %q", field), common.ErrUnknownField)
			}

			in, err := readOne(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			var rows [][]string
			for _, seg := range parser.Segmenter().Split(bidi.Normalize(in.Text)) {
				m, ok := parser.Table().Match(field, seg.Text())
				if !ok {
					rows = append(rows, []string{fmt.Sprint(seg.Index), seg.Anchor, "-", cli.SubtleStyle.Render("no match"), ""})
					continue
				}
				rows = append(rows, []string{
					fmt.Sprint(seg.Index),
					seg.Anchor,
					fmt.Sprint(m.Pattern),
					m.Value,
					coerced(kind, m.Value),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s (%s) in %s", field, kind, in.Name)))
			fmt.Fprintln(out, cli.Table([]string{"Segment", "Anchor", "Pattern", "Raw", "Value"}, rows))
			return nil
		},
	}
}

func coerced(kind value.Kind, raw string) string {
	switch v := value.Coerce(kind, raw).(type) {
	case *float64:
		if v != nil {
			return fmt.Sprint(*v)
		}
	case *int:
		if v != nil {
			return fmt.Sprint(*v)
		}
	case *string:
		if v != nil {
			return *v
		}
	}
	return cli.ErrorStyle.Render("absent")
}
