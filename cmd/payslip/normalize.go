package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ohad12345678/payslip/internal/bidi"
	"github.com/ohad12345678/payslip/internal/cli"
)

func normalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Print text with visual-order lines repaired",
		Long: `Print the input with every line that was emitted in visual order rewritten
into logical order.

Examples:
  payslip normalize march.txt
  payslip normalize march.txt --show-flags`,
		Args: cobra.ExactArgs(1),
		RunE: runNormalize,
	}

	cmd.Flags().Bool("show-flags", false, "mark rewritten lines")

	return cmd
}

func runNormalize(cmd *cobra.Command, args []string) error {
	showFlags, _ := cmd.Flags().GetBool("show-flags")

	in, err := readOne(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	normalized := bidi.Normalize(in.Text)
	out := cmd.OutOrStdout()
	if !showFlags {
		_, err = fmt.Fprintln(out, normalized)
		return err
	}

	flagged := make(map[int]bool)
	for _, i := range bidi.ReversedLines(in.Text) {
		flagged[i] = true
	}
	for i, line := range strings.Split(normalized, "\n") {
		marker := "  "
		if flagged[i] {
			marker = cli.FlagStyle.Render(cli.FlagIcon) + " "
		}
		if _, err := fmt.Fprintln(out, marker+line); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.ErrOrStderr(), cli.FormatInfo(fmt.Sprintf("%d lines rewritten", len(flagged))))
	return nil
}
