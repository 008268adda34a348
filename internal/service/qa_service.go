package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"docqa/internal/chunker"
	"docqa/internal/domain"
	"docqa/internal/formatter"
	"docqa/internal/ranker"
	"docqa/internal/store"
	"docqa/internal/tokenizer"
)

// DefaultFallbackPrefix is how many characters of the document are returned
// when a question has no usable tokens.
const DefaultFallbackPrefix = 500

// LoadConfig controls how a document is segmented.
type LoadConfig struct {
	Segmentation string
}

// QueryConfig controls ranking and answer formatting.
type QueryConfig struct {
	TopK            int
	MinTokenLength  int
	KeepPunctuation bool
	Match           ranker.MatchPolicy
	Highlight       bool
	HighlightOpen   string
	HighlightClose  string
	ResponseCharCap int
	FallbackPrefix  int
	NotFoundMessage string
}

// DefaultQueryConfig is single-best-match mode without highlighting.
func DefaultQueryConfig() QueryConfig {
	return QueryConfig{
		TopK:            1,
		MinTokenLength:  tokenizer.DefaultMinLength,
		Match:           ranker.MatchSubstring,
		HighlightOpen:   formatter.DefaultOpen,
		HighlightClose:  formatter.DefaultClose,
		ResponseCharCap: formatter.DefaultCharCap,
		FallbackPrefix:  DefaultFallbackPrefix,
		NotFoundMessage: formatter.NotFoundMessage,
	}
}

// Build segments text into a new Document. Empty text yields a document with no segments.
func Build(text string, cfg LoadConfig) (*domain.Document, error) {
	seg, err := chunker.New(cfg.Segmentation)
	if err != nil {
		return nil, err
	}
	policy := strings.ToLower(strings.TrimSpace(cfg.Segmentation))
	if policy == "" {
		policy = chunker.Paragraph
	}
	return &domain.Document{Text: text, Segmentation: policy, Segments: seg.Segment(text)}, nil
}

// Query answers question against doc. It never fails: a nil or empty document and
// a question without matches give the not-found answer, and a question without usable
// tokens gives a prefix of the document.
func Query(doc *domain.Document, question string, cfg QueryConfig) domain.Answer {
	f := &formatter.Formatter{
		CharCap:   cfg.ResponseCharCap,
		Highlight: cfg.Highlight,
		Open:      cfg.HighlightOpen,
		Close:     cfg.HighlightClose,
		NotFound:  cfg.NotFoundMessage,
	}
	if doc == nil || len(doc.Segments) == 0 {
		return f.NotFoundAnswer()
	}
	filter := tokenizer.NewFilter(cfg.MinTokenLength)
	filter.KeepPunctuation = cfg.KeepPunctuation
	tokens := filter.Apply(tokenizer.Collect(question))
	if len(tokens) == 0 {
		return fallbackAnswer(doc, cfg, f)
	}
	return f.Format(ranker.Rank(doc.Segments, tokens, cfg.TopK, cfg.Match), tokens)
}

func fallbackAnswer(doc *domain.Document, cfg QueryConfig, f *formatter.Formatter) domain.Answer {
	n := cfg.FallbackPrefix
	if n <= 0 {
		n = DefaultFallbackPrefix
	}
	prefix := strings.TrimSpace(formatter.Truncate(doc.Text, n))
	if prefix == "" {
		return f.NotFoundAnswer()
	}
	return domain.Answer{Text: prefix, Fallback: true}
}

// QAServiceImpl owns the loaded document and answers questions against it.
type QAServiceImpl struct {
	store    *store.Memory
	loadCfg  LoadConfig
	queryCfg QueryConfig
	log      zerolog.Logger
}

func NewQAService(st *store.Memory, loadCfg LoadConfig, queryCfg QueryConfig, log zerolog.Logger) *QAServiceImpl {
	if st == nil {
		st = store.NewMemory()
	}
	return &QAServiceImpl{store: st, loadCfg: loadCfg, queryCfg: queryCfg, log: log}
}

// Load segments text and installs it as the current document.
func (s *QAServiceImpl) Load(text string) (*domain.Document, error) {
	doc, err := Build(text, s.loadCfg)
	if err != nil {
		return nil, err
	}
	s.store.Swap(doc)
	s.log.Info().
		Str("segmentation", doc.Segmentation).
		Int("chars", len(text)).
		Int("segments", len(doc.Segments)).
		Msg("document loaded")
	return doc, nil
}

// LoadFrom fetches text for ref from provider and loads it.
func (s *QAServiceImpl) LoadFrom(ctx context.Context, provider domain.TextProvider, ref string) (*domain.Document, error) {
	text, err := provider.Fetch(ctx, ref)
	if err != nil {
		s.log.Error().Err(err).Str("ref", ref).Msg("document fetch failed")
		return nil, fmt.Errorf("fetch %s: %w", ref, err)
	}
	return s.Load(text)
}

// Ask answers question against the current document.
func (s *QAServiceImpl) Ask(question string) (domain.Answer, error) {
	doc := s.store.Current()
	if doc == nil {
		return domain.Answer{}, domain.ErrNoDocument
	}
	start := time.Now()
	ans := Query(doc, question, s.queryCfg)
	s.log.Debug().
		Int("question_len", len(question)).
		Bool("matched", ans.Matched).
		Bool("fallback", ans.Fallback).
		Int("score", ans.Score).
		Dur("took", time.Since(start)).
		Msg("question answered")
	return ans, nil
}

// Current returns the loaded document or nil.
func (s *QAServiceImpl) Current() *domain.Document { return s.store.Current() }

func (s *QAServiceImpl) Loads() uint64 { return s.store.Loads() }
