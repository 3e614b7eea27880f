package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ohad12345678/payslip/internal/cli"
	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/config"
	"github.com/ohad12345678/payslip/internal/export"
	"github.com/ohad12345678/payslip/internal/extract"
	"github.com/ohad12345678/payslip/internal/model"
)

const (
	formatJSON  = "json"
	formatXLSX  = "xlsx"
	formatTable = "table"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file...>",
		Short: "Extract statement records from decoded text",
		Long: `Extract statement records from one or more files of decoded statement text.

Directories are scanned for .txt files; "-" reads standard input.

Examples:
  payslip parse march.txt
  payslip parse statements/ --format xlsx --output march.xlsx
  pdftotext march.pdf - | payslip parse - --format table`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().StringP("format", "f", formatJSON, "output format (json, xlsx, table)")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
	cmd.Flags().String("rules", "", "rules file overriding parser.rules_file")
	cmd.Flags().IntP("workers", "w", 0, "documents parsed in parallel (default: parser.workers)")
	cmd.Flags().Bool("compact", false, "write JSON without indentation")
	cmd.Flags().BoolP("quiet", "q", false, "suppress the summary")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	rulesFile, _ := cmd.Flags().GetString("rules")
	workers, _ := cmd.Flags().GetInt("workers")
	compact, _ := cmd.Flags().GetBool("compact")
	quiet, _ := cmd.Flags().GetBool("quiet")

	switch format {
	case formatJSON, formatTable:
	case formatXLSX:
		if output == "" {
			return common.NewUserError("xlsx output needs --output", nil)
		}
	default:
		return common.NewUserError(fmt.Sprintf("unknown format %q (use json, xlsx or table)", format), nil)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if rulesFile != "" {
		cfg.Parser.RulesFile = config.ExpandPath(rulesFile)
	}
	if workers > 0 {
		cfg.Parser.Workers = workers
	}

	inputs, err := cli.ReadInputs(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	bar := cli.NewProgress(cmd.ErrOrStderr(), len(inputs), "Parsing statements...")
	parser, err := newParser(cfg, extract.WithProgress(func(*model.Document) { cli.Step(bar) }))
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := interrupts.HandleInterrupts(cmd.Context())
	defer interrupts.Stop()

	docs, err := parser.ParseAll(ctx, inputs, cfg.Parser.Workers)
	if err != nil {
		if interrupts.WasInterrupted() {
			return nil
		}
		return fmt.Errorf("failed to parse: %w", err)
	}

	if err := writeOutput(cmd.OutOrStdout(), output, format, docs, !compact); err != nil {
		return err
	}

	if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), cli.Summary(docs))
	}
	return nil
}

func writeOutput(stdout io.Writer, path, format string, docs []*model.Document, indent bool) (err error) {
	w := stdout
	if path != "" {
		f, createErr := os.Create(config.ExpandPath(path)) //nolint:gosec // user-chosen output path
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("failed to close output file: %w", closeErr)
			}
		}()
		w = f
	}

	switch format {
	case formatXLSX:
		err = export.WriteXLSX(w, docs)
	case formatTable:
		_, err = fmt.Fprintln(w, cli.RecordTable(docs))
	default:
		err = export.WriteJSON(w, docs, indent)
	}
	if err != nil {
		return err
	}

	if path != "" {
		slog.Info("wrote output", "path", path, "format", format, "documents", len(docs))
	}
	return nil
}
