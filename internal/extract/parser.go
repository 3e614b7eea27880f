// Package extract runs the full pipeline from decoded document text to
// statement records.
package extract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ohad12345678/payslip/internal/bidi"
	"github.com/ohad12345678/payslip/internal/common"
	"github.com/ohad12345678/payslip/internal/model"
	"github.com/ohad12345678/payslip/internal/pattern"
	"github.com/ohad12345678/payslip/internal/segment"
	"github.com/ohad12345678/payslip/internal/statement"
)

// Input is one decoded document.
type Input struct {
	Name string
	Text string
}

// Parser normalizes, segments and assembles statements. It holds only
// read-only state after construction and is safe for concurrent use.
type Parser struct {
	logger     *slog.Logger
	segmenter  *segment.Segmenter
	assembler  *statement.Assembler
	onDocument func(*model.Document)
	rules      pattern.RuleTable
	anchor     string
	lookback   int
	rawLimit   int
}

// Option configures a Parser.
type Option func(*Parser)

// WithRules replaces the default rule table.
func WithRules(rules pattern.RuleTable) Option {
	return func(p *Parser) { p.rules = rules }
}

// WithAnchor sets the identifier expression used to split documents.
func WithAnchor(expr string) Option {
	return func(p *Parser) { p.anchor = expr }
}

// WithLookback sets how many header lines above an identifier belong to it.
func WithLookback(n int) Option {
	return func(p *Parser) { p.lookback = n }
}

// WithRawTextLimit sets how many runes of statement text a record keeps.
func WithRawTextLimit(n int) Option {
	return func(p *Parser) { p.rawLimit = n }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) { p.logger = logger }
}

// WithProgress registers fn to be called once per finished document in
// ParseAll. Calls are serialized.
func WithProgress(fn func(*model.Document)) Option {
	return func(p *Parser) { p.onDocument = fn }
}

// NewParser builds a parser. Rules and anchor are compiled once here.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		anchor:   segment.DefaultAnchor,
		lookback: segment.DefaultLookback,
		rawLimit: statement.DefaultRawTextLimit,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.rules == nil {
		p.rules = pattern.DefaultRules()
	}
	if p.rawLimit < 0 {
		return nil, fmt.Errorf("%w: raw text limit must be >= 0, got %d", common.ErrInvalidConfig, p.rawLimit)
	}

	seg, err := segment.New(p.anchor, p.lookback)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	table, err := pattern.Compile(p.rules)
	if err != nil {
		return nil, err
	}
	if _, ok := table.Kind(pattern.IdentityField); !ok {
		return nil, fmt.Errorf("%w: rule table has no %q field", common.ErrInvalidRules, pattern.IdentityField)
	}

	p.segmenter = seg
	p.assembler = statement.New(table, p.rawLimit)
	return p, nil
}

// Table returns the compiled rule table.
func (p *Parser) Table() *pattern.Table { return p.assembler.Table() }

// Segmenter returns the segmenter in use.
func (p *Parser) Segmenter() *segment.Segmenter { return p.segmenter }

// Parse extracts every statement in text. Blank input is an error; any other
// input yields a list, possibly empty.
func (p *Parser) Parse(text string) ([]model.StatementRecord, error) {
	res, err := p.run("", text)
	if err != nil {
		return nil, err
	}
	return res.records, nil
}

// ParseDocument is Parse with document bookkeeping.
func (p *Parser) ParseDocument(name, text string) (*model.Document, error) {
	doc := &model.Document{
		ID:      uuid.NewString(),
		Source:  name,
		Records: []model.StatementRecord{},
	}

	res, err := p.run(name, text)
	if err != nil {
		doc.SetErr(err)
		return doc, err
	}

	doc.Records = res.records
	doc.Segments = res.segments
	doc.Dropped = res.segments - len(res.records)
	doc.RawText = statement.Prefix(res.normalized, p.rawLimit)

	p.logger.Info("parsed document",
		"source", name,
		"id", doc.ID,
		"segments", doc.Segments,
		"records", len(doc.Records),
		"dropped", doc.Dropped)
	return doc, nil
}

// ParseAll parses inputs with at most workers documents in flight. Output
// order follows input order. Blank documents are reported on their Document
// rather than failing the batch. A cancelled ctx aborts the batch and yields
// only ctx's error.
func (p *Parser) ParseAll(ctx context.Context, inputs []Input, workers int) ([]*model.Document, error) {
	if workers < 1 {
		workers = 1
	}

	docs := make([]*model.Document, len(inputs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, in := range inputs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			doc, err := p.ParseDocument(in.Name, in.Text)
			if err != nil && !errors.Is(err, common.ErrNoText) {
				return fmt.Errorf("%s: %w", in.Name, err)
			}
			if err != nil {
				p.logger.Warn("skipping empty document", "source", in.Name)
			}
			docs[i] = doc

			if p.onDocument != nil {
				mu.Lock()
				p.onDocument(doc)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return docs, nil
}

type result struct {
	normalized string
	records    []model.StatementRecord
	segments   int
}

func (p *Parser) run(name, text string) (result, error) {
	if strings.TrimSpace(text) == "" {
		return result{}, common.ErrNoText
	}

	normalized := bidi.Normalize(text)
	segs := p.segmenter.Split(normalized)

	records := make([]model.StatementRecord, 0, len(segs))
	for _, seg := range segs {
		rec, ok := p.assembler.Assemble(seg)
		if !ok {
			p.logger.Debug("dropping segment without identity",
				"source", name,
				"segment", seg.Index,
				"start", seg.Start,
				"end", seg.End,
				"anchor", seg.Anchor)
			continue
		}
		records = append(records, rec)
	}

	return result{normalized: normalized, records: records, segments: len(segs)}, nil
}
