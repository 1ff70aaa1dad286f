// Package matcher scores free-text questions against the catalog's canonical
// questions using Jaccard similarity over normalized token sets. It is a
// lexical matcher: paraphrases that share no words with a canonical question
// will not match, which is accepted behavior.
package matcher

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/catalog"
)

// DefaultThreshold is the minimum best score required to report a match.
const DefaultThreshold = 0.3

// nonWordPattern strips everything that is not a letter, digit, underscore
// or whitespace. \p{L}\p{N} rather than \w: questions are Spanish and Go's
// \w is ASCII-only, which would mangle accented words.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// MatchResult holds the best catalog entry for a question, or a nil Entry
// when nothing clears the threshold. Score is always in [0,1].
type MatchResult struct {
	Entry *catalog.Entry
	Score float64
}

// Matcher matches questions against an injected catalog. Entry token sets
// are precomputed at construction; Match is safe for concurrent use.
type Matcher struct {
	entries   []catalog.Entry
	tokens    []map[string]struct{}
	threshold float64
	logger    *zap.Logger
}

// New builds a matcher over the given catalog. A threshold <= 0 falls back
// to DefaultThreshold.
func New(cat *catalog.Catalog, threshold float64, logger *zap.Logger) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	entries := cat.All()
	tokens := make([]map[string]struct{}, len(entries))
	for i, e := range entries {
		tokens[i] = Tokenize(e.Question)
	}
	return &Matcher{
		entries:   entries,
		tokens:    tokens,
		threshold: threshold,
		logger:    logger.Named("matcher"),
	}
}

// Match scores the question against every catalog entry and returns the
// best entry above the threshold, or a nil Entry with the best score seen.
// Ties keep the first entry in catalog definition order, so results are
// deterministic and reproducible.
func (m *Matcher) Match(question string) MatchResult {
	qTokens := Tokenize(question)

	best := MatchResult{Score: 0}
	for i := range m.entries {
		score := Jaccard(qTokens, m.tokens[i])
		if score > best.Score {
			best.Score = score
			best.Entry = &m.entries[i]
		}
	}

	if best.Score < m.threshold {
		m.logger.Debug("no catalog match",
			zap.Float64("best_score", best.Score),
			zap.Int("question_tokens", len(qTokens)))
		return MatchResult{Score: best.Score}
	}

	m.logger.Debug("catalog match",
		zap.String("entry_id", best.Entry.ID),
		zap.Float64("score", best.Score))
	return best
}

// Tokenize lowercases the text, strips punctuation and splits on whitespace
// into a set of tokens.
func Tokenize(text string) map[string]struct{} {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(text), "")
	tokens := make(map[string]struct{})
	for _, word := range strings.Fields(cleaned) {
		tokens[word] = struct{}{}
	}
	return tokens
}

// Jaccard computes |a∩b| / |a∪b| for two token sets. Returns 0 when either
// set is empty, guarding the division.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	common := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			common++
		}
	}
	union := len(a) + len(b) - common
	return float64(common) / float64(union)
}
