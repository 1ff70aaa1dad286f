// Package services orchestrates the question pipelines: keyword matching
// against the catalog and LLM-based SQL generation, both feeding the same
// executor and result shaping.
package services

import (
	"context"

	"github.com/bocado-labs/consulta-engine/pkg/chart"
	"github.com/bocado-labs/consulta-engine/pkg/executor"
)

// Answer statuses. Execution faults keep StatusSuccess with the error
// embedded in Results, matching the wire behavior existing clients expect;
// an empty result set is a distinct status so callers no longer have to
// parse message text.
const (
	StatusSuccess   = "success"
	StatusNoResults = "no_results"
	StatusRejected  = "rejected"
)

// noResultsMessage travels inside the payload for client compatibility.
const noResultsMessage = "La consulta no devolvió resultados."

// Answer is the pipeline outcome for a single question.
type Answer struct {
	Question  string
	MatchedID string // catalog entry id; empty for the LLM engine
	Score     float64
	SQLQuery  string
	Results   map[string]any
	Status    string
}

// AnswerService turns a natural-language question into an Answer.
type AnswerService interface {
	Answer(ctx context.Context, question string) (*Answer, error)
}

// SQLExecutor is the executor surface the pipelines depend on.
type SQLExecutor interface {
	Execute(ctx context.Context, sqlQuery string) (*executor.QueryResult, error)
}

// shapeResults builds the wire payload for a successful execution: columns
// and rows always, plus labels/values when the result is chartable
// (exactly two columns, second uniformly numeric).
func shapeResults(result *executor.QueryResult) map[string]any {
	shaped := map[string]any{
		"columns": result.Columns,
		"rows":    result.Rows,
	}
	if chart.IsNumeric(result) {
		payload := chart.FromResult(result)
		shaped["labels"] = payload.Labels
		shaped["values"] = payload.Values
	}
	return shaped
}

// errorResults builds the error-shaped payload used for execution faults
// and empty result sets.
func errorResults(message string) map[string]any {
	return map[string]any{"error": message}
}
