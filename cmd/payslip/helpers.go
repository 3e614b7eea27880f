package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"github.com/ohad12345678/payslip/internal/cli"
	"github.com/ohad12345678/payslip/internal/config"
	"github.com/ohad12345678/payslip/internal/extract"
	"github.com/ohad12345678/payslip/internal/pattern"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newParser builds a parser from the parser section of cfg.
func newParser(cfg *config.Config, opts ...extract.Option) (*extract.Parser, error) {
	rules, err := pattern.Resolve(cfg.Parser.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	base := []extract.Option{
		extract.WithRules(rules),
		extract.WithAnchor(cfg.Parser.Anchor),
		extract.WithLookback(cfg.Parser.Lookback),
		extract.WithRawTextLimit(cfg.Parser.RawTextLimit),
		extract.WithLogger(slog.Default()),
	}
	return extract.NewParser(append(base, opts...)...)
}

// readOne loads a single input argument.
func readOne(path string, stdin io.Reader) (extract.Input, error) {
	inputs, err := cli.ReadInputs([]string{path}, stdin)
	if err != nil {
		return extract.Input{}, err
	}
	if len(inputs) != 1 {
		return extract.Input{}, fmt.Errorf("%s: expected one file, found %d", path, len(inputs))
	}
	return inputs[0], nil
}
