// Package chart reshapes query results into the label/value pairs the UI
// feeds to Chart.js.
package chart

import (
	"fmt"

	"github.com/bocado-labs/consulta-engine/pkg/executor"
)

// Payload is a chart-ready projection of a two-column result. Labels and
// Values always have equal length and preserve row order.
type Payload struct {
	Labels []string `json:"labels"`
	Values []any    `json:"values"`
}

// FromResult projects a result onto labels (column 0, coerced to text) and
// values (column 1). Results with a width other than exactly two columns
// come back as an empty payload; wide results are for tabular display only.
// Column 1 is not required to be numeric here; callers use IsNumeric to
// decide chart vs table rendering.
func FromResult(result *executor.QueryResult) Payload {
	empty := Payload{Labels: []string{}, Values: []any{}}
	if result == nil || len(result.Columns) != 2 {
		return empty
	}

	labelCol, valueCol := result.Columns[0], result.Columns[1]
	payload := Payload{
		Labels: make([]string, 0, len(result.Rows)),
		Values: make([]any, 0, len(result.Rows)),
	}
	for _, row := range result.Rows {
		payload.Labels = append(payload.Labels, fmt.Sprint(row[labelCol]))
		payload.Values = append(payload.Values, row[valueCol])
	}
	return payload
}

// IsNumeric reports whether the result has exactly two columns and the
// second is numeric in every row. NULLs count as non-numeric.
func IsNumeric(result *executor.QueryResult) bool {
	if result == nil || len(result.Columns) != 2 || len(result.Rows) == 0 {
		return false
	}
	valueCol := result.Columns[1]
	for _, row := range result.Rows {
		switch row[valueCol].(type) {
		case int, int32, int64, float32, float64:
		default:
			return false
		}
	}
	return true
}
