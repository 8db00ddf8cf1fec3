// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns unstructured text and structured rows into scored
// task candidates. The pipeline runs section segmentation, sentence and
// list extraction against the pattern library, date resolution, priority
// classification, confidence scoring, optional enrichment, and finally
// deduplication and ranking. A Parser is a pure function over its inputs:
// no state survives a call and independent parses may run concurrently.
package extract

import (
	"time"

	"github.com/pdiddy/tasksift/internal/dates"
	"github.com/pdiddy/tasksift/internal/enrich"
	"github.com/pdiddy/tasksift/internal/patterns"
	"github.com/pdiddy/tasksift/internal/segment"
	"github.com/pdiddy/tasksift/pkg/types"
)

// Parser extracts task candidates from text. Construct with New; the
// zero value is not usable.
type Parser struct {
	cfg       types.ParserConfig
	lib       *patterns.Library
	enricher  enrich.EntityExtractor
	enrichCfg types.EnrichmentConfig
	now       func() time.Time
}

// Option configures a Parser.
type Option func(*Parser)

// WithEnricher attaches the optional enrichment stage. The core pipeline
// is correct without it.
func WithEnricher(x enrich.EntityExtractor, cfg types.EnrichmentConfig) Option {
	return func(p *Parser) {
		p.enricher = x
		p.enrichCfg = cfg.Normalize()
	}
}

// WithClock overrides the base time used for relative date resolution.
// Tests use this for deterministic deadlines.
func WithClock(fn func() time.Time) Option {
	return func(p *Parser) { p.now = fn }
}

// New returns a Parser with defaults applied.
func New(cfg types.ParserConfig, opts ...Option) *Parser {
	p := &Parser{
		cfg: cfg.Normalize(),
		lib: patterns.Default(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts, scores, deduplicates, and ranks task candidates from
// text and optional structured rows. It never returns an error or panics:
// an internal fault yields an empty list, indistinguishable by contract
// from "no tasks present". The returned slice is owned by the caller.
func (p *Parser) Parse(text string, rows []types.Row) (out []types.TaskCandidate) {
	defer func() {
		if recover() != nil {
			out = []types.TaskCandidate{}
		}
	}()

	now := p.now()

	var cands []types.TaskCandidate
	for _, sec := range segment.Split(text, p.lib) {
		cands = append(cands, p.extractSection(sec, now)...)
	}
	cands = append(cands, p.structuredCandidates(rows, now)...)

	if p.enricher != nil && p.enrichCfg.Enabled {
		cands = enrich.Apply(cands, text, p.enricher, enrich.Options{
			Boost:         p.enrichCfg.ContextBoost,
			MaxConfidence: p.cfg.MaxConfidence,
			Now:           now,
		})
	}

	cands = dedupe(cands)
	rank(cands)

	if cands == nil {
		cands = []types.TaskCandidate{}
	}
	return cands
}

// extractSection runs the list extractor and the sentence pattern
// extractor over one section. Lines carrying a list marker belong to the
// list extractor alone; everything else is sentence-split and matched
// against the action rules.
func (p *Parser) extractSection(sec segment.Section, now time.Time) []types.TaskCandidate {
	var out []types.TaskCandidate

	for _, line := range sec.Lines {
		text := p.capLine(line.Text)

		if item, ok := p.lib.ListItem(text); ok {
			if c, ok := p.listCandidate(item, text, line.Number, sec.Header, now); ok {
				out = append(out, c)
			}
			continue
		}

		for _, sentence := range splitSentences(text) {
			out = append(out, p.sentenceCandidates(sentence, line.Number, sec.Header, now)...)
		}
	}

	return out
}

// sentenceCandidates matches one sentence against the action rules.
// Negated sentences emit nothing. Rules are tried in table order and the
// first rule producing a valid candidate wins; a single rule may still
// match multiple times within the sentence.
func (p *Parser) sentenceCandidates(sentence string, lineNum int, header string, now time.Time) []types.TaskCandidate {
	if p.lib.IsNegated(sentence) {
		return nil
	}

	for _, rule := range p.lib.Action {
		var out []types.TaskCandidate
		for _, frag := range rule.Extract(sentence) {
			title := cleanTitle(frag, p.cfg.MaxTitleLength)
			if !p.validTitle(title) {
				continue
			}
			due := p.deadlineFor(sentence, now)
			out = append(out, types.TaskCandidate{
				Title:         title,
				SourceText:    sentence,
				DueDate:       due,
				Priority:      p.priorityFor(sentence, header, due, now),
				Confidence:    p.score(title, sentence, header),
				LineNumber:    lineNum,
				SectionHeader: header,
			})
		}
		if len(out) > 0 {
			return out
		}
	}
	return nil
}

// listCandidate builds a candidate from the content of a bulleted,
// numbered, or lettered list line. List membership is itself a strong
// task signal, so these take a flat confidence instead of the additive
// formula.
func (p *Parser) listCandidate(item, line string, lineNum int, header string, now time.Time) (types.TaskCandidate, bool) {
	if p.lib.IsNegated(item) {
		return types.TaskCandidate{}, false
	}

	title := cleanTitle(item, p.cfg.MaxTitleLength)
	if !p.validTitle(title) {
		return types.TaskCandidate{}, false
	}

	due := p.deadlineFor(item, now)
	return types.TaskCandidate{
		Title:         title,
		SourceText:    line,
		DueDate:       due,
		Priority:      p.priorityFor(item, header, due, now),
		Confidence:    p.cfg.ListConfidence,
		LineNumber:    lineNum,
		SectionHeader: header,
	}, true
}

// deadlineFor tries each deadline rule in turn against the source text
// and returns the first expression that resolves. Exhausting the table
// yields nil.
func (p *Parser) deadlineFor(text string, now time.Time) *time.Time {
	for _, rule := range p.lib.Deadline {
		for _, expr := range rule.Extract(text) {
			if t, ok := dates.Resolve(expr, now); ok {
				return &t
			}
		}
	}
	return nil
}
