package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ohad12345678/payslip/internal/bidi"
	"github.com/ohad12345678/payslip/internal/cli"
	"github.com/ohad12345678/payslip/internal/pattern"
)

func segmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segments <file>",
		Short: "Show how a document is split into statements",
		Long: `Show the line range, identifier anchor and identity value of every segment
the document is split into. Segments without an identity are not statements
and are skipped by parse.`,
		Args: cobra.ExactArgs(1),
		RunE: runSegments,
	}
}

func runSegments(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	parser, err := newParser(cfg)
	if err != nil {
		return err
	}

	in, err := readOne(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	segs := parser.Segmenter().Split(bidi.Normalize(in.Text))
	rows := make([][]string, 0, len(segs))
	for _, seg := range segs {
		anchorLine := "-"
		if seg.AnchorLine >= 0 {
			anchorLine = fmt.Sprint(seg.AnchorLine + 1)
		}
		identity, ok := parser.Table().Lookup(pattern.IdentityField, seg.Text())
		if !ok || identity == "" {
			identity = cli.ErrorStyle.Render("none (skipped)")
		}
		rows = append(rows, []string{
			fmt.Sprint(seg.Index),
			fmt.Sprintf("%d-%d", seg.Start+1, seg.End),
			anchorLine,
			seg.Anchor,
			identity,
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%s: %d segments", in.Name, len(segs))))
	fmt.Fprintln(out, cli.Table([]string{"#", "Lines", "Anchor line", "Anchor", "Identity"}, rows))
	return nil
}
