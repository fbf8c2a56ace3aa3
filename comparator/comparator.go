package comparator

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/namematch/align"
	"github.com/teranos/namematch/clean"
	"github.com/teranos/namematch/internal/config"
	"github.com/teranos/namematch/logger"
	"github.com/teranos/namematch/modify"
	"github.com/teranos/namematch/phonetic"
	"github.com/teranos/namematch/pronounce"
	"github.com/teranos/namematch/refdata"
	"github.com/teranos/namematch/spelling"
)

// Comparator runs the full name-comparison pipeline (spec §4.15) over a
// single set of reference tables, built once and shared across calls.
// It holds no per-call mutable state beyond the phonetic encoder's
// internal memoization cache, which is safe for concurrent use.
type Comparator struct {
	tables     *refdata.Tables
	encoder    *phonetic.Encoder
	thresholds config.ThresholdsConfig
	log        *zap.SugaredLogger
	trace      bool
}

// Option configures a Comparator at construction.
type Option func(*Comparator)

// WithLogger attaches a structured logger for per-comparison tracing.
// Defaults to the package-wide logger.Logger (a safe no-op until
// logger.Initialize is called).
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Comparator) { c.log = l }
}

// WithThresholds overrides the default spelling/pronunciation
// thresholds and phonetic cache size.
func WithThresholds(t config.ThresholdsConfig) Option {
	return func(c *Comparator) { c.thresholds = t }
}

// WithTrace enables the optional free-text cleaner-edit log on every
// Result. Off by default: it costs nothing a caller doesn't ask for, but
// isn't free to compute, so it isn't collected unless requested.
func WithTrace(enabled bool) Option {
	return func(c *Comparator) { c.trace = enabled }
}

func defaultThresholds() config.ThresholdsConfig {
	return config.ThresholdsConfig{
		SpellingPairScore: spelling.PairScoreThreshold,
		SpellingPairCount: spelling.PairCountQuorum,
		PronounceLowK2:    80,
		PronounceLowKGt2:  75,
		PhoneticCacheSize: 1000,
	}
}

// New constructs a Comparator, loading reference data from refDataDir.
func New(refDataDir string, opts ...Option) (*Comparator, error) {
	tables, err := refdata.Load(refDataDir)
	if err != nil {
		return nil, err
	}

	thresholds := defaultThresholds()
	c := &Comparator{tables: tables, thresholds: thresholds, log: logger.Logger}
	for _, opt := range opts {
		opt(c)
	}

	encoder, err := phonetic.NewEncoder(tables, c.thresholds.PhoneticCacheSize)
	if err != nil {
		return nil, err
	}
	c.encoder = encoder

	return c, nil
}

// Compare decides whether nameA and nameB refer to the same person,
// running the four-attempt cascade and returning a fully populated
// diagnostic record. Never panics; any internal corner case resolves to
// match=false with the attempts recorded up to the point of termination.
func (c *Comparator) Compare(nameA, nameB string) Result {
	traceID := uuid.NewString()
	result := Result{TraceID: traceID}

	leftSingle := clean.CleanSingle(nameA)
	rightSingle := clean.CleanSingle(nameB)

	var leftPaired, rightPaired string
	if c.trace {
		leftPaired, rightPaired, result.Trace = clean.CleanPairWithTrace(leftSingle, rightSingle)
	} else {
		leftPaired, rightPaired = clean.CleanPair(leftSingle, rightSingle)
	}

	leftTokens := clean.Tokenize(leftPaired)
	rightTokens := clean.Tokenize(rightPaired)

	result.TooShort = tooShort(leftTokens, rightTokens)
	initialAlignment := align.Align(leftTokens, rightTokens)
	result.TooGeneric = tooGeneric(c.tables, leftTokens, rightTokens, initialAlignment)

	leftNick := substituteNicknames(c.tables, leftTokens, rightTokens)

	spell1 := spelling.MatchWithThresholds(leftNick, rightTokens, c.thresholds.SpellingPairScore, c.thresholds.SpellingPairCount)
	result.Attempt1 = &Attempt{
		LeftRendered:  strings.Join(leftNick, " "),
		RightRendered: strings.Join(rightTokens, " "),
		Alignment:     spell1.Alignment,
		ViaSkeleton:   spell1.ViaSkeleton,
	}
	c.logAttempt(traceID, 1, spell1.Match)
	if spell1.Match {
		result.Match = true
		c.logResult(traceID, result)
		return result
	}

	if !worthContinuing(leftNick, rightTokens, spell1.Alignment) {
		c.logResult(traceID, result)
		return result
	}

	modLeft, modRight := modify.Modify(c.tables, leftNick, rightTokens)
	spell2 := spelling.MatchWithThresholds(modLeft, modRight, c.thresholds.SpellingPairScore, c.thresholds.SpellingPairCount)
	result.Attempt2 = &Attempt{
		LeftRendered:  strings.Join(modLeft, " "),
		RightRendered: strings.Join(modRight, " "),
		Alignment:     spell2.Alignment,
		ViaSkeleton:   spell2.ViaSkeleton,
	}
	c.logAttempt(traceID, 2, spell2.Match)
	if spell2.Match {
		result.Match = true
		c.logResult(traceID, result)
		return result
	}

	pron3 := pronounce.MatchWithThresholds(c.tables, c.encoder, modLeft, modRight, spell2.Alignment, c.thresholds.PronounceLowK2, c.thresholds.PronounceLowKGt2)
	result.Attempt3 = &Attempt{
		LeftRendered:  strings.Join(pron3.LeftIPA, " "),
		RightRendered: strings.Join(pron3.RightIPA, " "),
		Alignment:     pron3.Alignment,
		Pronounced:    true,
	}
	c.logAttempt(traceID, 3, pron3.Match)
	if pron3.Match {
		result.Match = true
		c.logResult(traceID, result)
		return result
	}

	pron4 := pronounce.MatchWithThresholds(c.tables, c.encoder, leftNick, rightTokens, spell1.Alignment, c.thresholds.PronounceLowK2, c.thresholds.PronounceLowKGt2)
	result.Attempt4 = &Attempt{
		LeftRendered:  strings.Join(pron4.LeftIPA, " "),
		RightRendered: strings.Join(pron4.RightIPA, " "),
		Alignment:     pron4.Alignment,
		Pronounced:    true,
	}
	c.logAttempt(traceID, 4, pron4.Match)
	result.Match = pron4.Match

	c.logResult(traceID, result)
	return result
}

func (c *Comparator) logAttempt(traceID string, attempt int, matched bool) {
	if c.log == nil {
		return
	}
	c.log.Debugw("comparison attempt",
		logger.FieldTraceID, traceID,
		logger.FieldAttempt, attempt,
		logger.FieldMatch, matched,
	)
}

func (c *Comparator) logResult(traceID string, result Result) {
	if c.log == nil {
		return
	}
	c.log.Infow("comparison result",
		logger.FieldTraceID, traceID,
		logger.FieldMatch, result.Match,
		logger.FieldTooShort, result.TooShort,
		logger.FieldTooGeneric, result.TooGeneric,
	)
}
