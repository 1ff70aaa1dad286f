package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/apperrors"
	"github.com/bocado-labs/consulta-engine/pkg/llm"
	"github.com/bocado-labs/consulta-engine/pkg/observability"
	"github.com/bocado-labs/consulta-engine/pkg/sqlguard"
)

// LLMService answers questions by asking a text-generation endpoint for
// SQL, validating it, and executing it against the snapshot.
type LLMService struct {
	generator llm.SQLGenerator
	exec      SQLExecutor
	logger    *zap.Logger
}

// NewLLMService creates the LLM pipeline.
func NewLLMService(generator llm.SQLGenerator, exec SQLExecutor, logger *zap.Logger) *LLMService {
	return &LLMService{
		generator: generator,
		exec:      exec,
		logger:    logger.Named("llm_pipeline"),
	}
}

// Answer screens the question, generates SQL, validates it is a single
// SELECT, and executes it. Generation failures propagate as errors (HTTP
// 500); rejected SQL and execution faults travel inside the payload.
func (s *LLMService) Answer(ctx context.Context, question string) (*Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		observability.ObserveQuestion("llm", "empty_question")
		return nil, apperrors.ErrEmptyQuestion
	}

	if check := sqlguard.CheckQuestionForInjection(question); check != nil {
		observability.ObserveQuestion("llm", "unsafe_question")
		s.logger.Warn("pregunta rechazada por patrón de inyección",
			zap.String("fingerprint", check.Fingerprint))
		return nil, fmt.Errorf("fingerprint %s: %w", check.Fingerprint, apperrors.ErrUnsafeQuestion)
	}

	genStart := time.Now()
	rawSQL, err := s.generator.GenerateSQL(ctx, question)
	observability.ObserveLLMRequest(time.Since(genStart))
	if err != nil {
		observability.ObserveQuestion("llm", "generation_error")
		return nil, fmt.Errorf("generar consulta SQL: %w", err)
	}

	s.logger.Info("consulta SQL generada", zap.String("sql", rawSQL))

	answer := &Answer{
		Question: question,
		SQLQuery: rawSQL,
	}

	sqlText, err := sqlguard.EnsureReadOnly(rawSQL)
	if err != nil {
		observability.ObserveQuestion("llm", StatusRejected)
		s.logger.Warn("consulta SQL generada rechazada", zap.Error(err))
		answer.Results = errorResults("Consulta SQL rechazada: " + err.Error())
		answer.Status = StatusRejected
		return answer, nil
	}
	answer.SQLQuery = sqlText

	execStart := time.Now()
	result, err := s.exec.Execute(ctx, sqlText)
	if err != nil {
		observability.ObserveQuery("error", time.Since(execStart))
		observability.ObserveQuestion("llm", StatusSuccess)
		s.logger.Error("error al ejecutar la consulta SQL", zap.Error(err))
		answer.Results = errorResults("Error al ejecutar la consulta SQL: " + err.Error())
		answer.Status = StatusSuccess
		return answer, nil
	}
	observability.ObserveQuery("ok", time.Since(execStart))

	if len(result.Rows) == 0 {
		observability.ObserveQuestion("llm", StatusNoResults)
		answer.Results = errorResults(noResultsMessage)
		answer.Status = StatusNoResults
		return answer, nil
	}

	observability.ObserveQuestion("llm", StatusSuccess)
	answer.Results = shapeResults(result)
	answer.Status = StatusSuccess
	return answer, nil
}
