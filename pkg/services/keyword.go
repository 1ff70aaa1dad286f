package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/apperrors"
	"github.com/bocado-labs/consulta-engine/pkg/matcher"
	"github.com/bocado-labs/consulta-engine/pkg/observability"
)

// KeywordService answers questions by matching them against the catalog
// and running the matched entry's hand-written SQL.
type KeywordService struct {
	matcher *matcher.Matcher
	exec    SQLExecutor
	logger  *zap.Logger
}

// NewKeywordService creates the keyword pipeline.
func NewKeywordService(m *matcher.Matcher, exec SQLExecutor, logger *zap.Logger) *KeywordService {
	return &KeywordService{
		matcher: m,
		exec:    exec,
		logger:  logger.Named("keyword"),
	}
}

// Answer matches the question against the catalog and executes the matched
// SQL. No SQL runs when nothing clears the threshold.
func (s *KeywordService) Answer(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		observability.ObserveQuestion("keyword", "empty_question")
		return nil, apperrors.ErrEmptyQuestion
	}

	match := s.matcher.Match(question)
	observability.ObserveMatchScore(match.Score)
	if match.Entry == nil {
		observability.ObserveQuestion("keyword", "no_match")
		return nil, fmt.Errorf("mejor puntuación %.2f: %w", match.Score, apperrors.ErrNoMatch)
	}

	s.logger.Info("consulta identificada",
		zap.String("entry_id", match.Entry.ID),
		zap.Float64("score", match.Score))

	answer := &Answer{
		Question:  question,
		MatchedID: match.Entry.ID,
		Score:     match.Score,
		SQLQuery:  match.Entry.SQL,
	}

	start := time.Now()
	result, err := s.exec.Execute(ctx, match.Entry.SQL)
	if err != nil {
		observability.ObserveQuery("error", time.Since(start))
		observability.ObserveQuestion("keyword", StatusSuccess)
		s.logger.Error("error al ejecutar la consulta", zap.Error(err))
		// The execution fault travels inside the payload; the HTTP layer
		// still answers 200.
		answer.Results = errorResults("Error al ejecutar la consulta: " + err.Error())
		answer.Status = StatusSuccess
		return answer, nil
	}
	observability.ObserveQuery("ok", time.Since(start))

	if len(result.Rows) == 0 {
		observability.ObserveQuestion("keyword", StatusNoResults)
		answer.Results = errorResults(noResultsMessage)
		answer.Status = StatusNoResults
		return answer, nil
	}

	observability.ObserveQuestion("keyword", StatusSuccess)
	answer.Results = shapeResults(result)
	answer.Status = StatusSuccess
	return answer, nil
}
