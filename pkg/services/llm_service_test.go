package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bocado-labs/consulta-engine/pkg/apperrors"
	"github.com/bocado-labs/consulta-engine/pkg/executor"
	"github.com/bocado-labs/consulta-engine/pkg/llm"
)

func TestLLMAnswer_GeneratesValidatesExecutes(t *testing.T) {
	gen := &llm.MockGenerator{SQL: "```sql\nSELECT p.name AS Producto, SUM(sol.quantity) AS Cantidad FROM sale_order_line sol JOIN product_template p ON sol.product_id = p.id GROUP BY p.id;\n```"}
	exec := &fakeExecutor{result: &executor.QueryResult{
		Columns: []string{"Producto", "Cantidad"},
		Rows: []map[string]any{
			{"Producto": "Hamburguesa Clásica", "Cantidad": int64(9)},
		},
	}}
	svc := NewLLMService(gen, exec, zap.NewNop())

	answer, err := svc.Answer(context.Background(), "¿Cuáles son los productos más vendidos?")
	require.NoError(t, err)

	assert.Equal(t, 1, gen.Calls)
	assert.Equal(t, StatusSuccess, answer.Status)
	// Fences and the trailing semicolon are stripped before execution.
	assert.NotContains(t, answer.SQLQuery, "```")
	assert.NotContains(t, exec.lastSQL, ";")
	assert.Contains(t, answer.Results, "labels")
}

func TestLLMAnswer_EmptyQuestion(t *testing.T) {
	gen := &llm.MockGenerator{SQL: "SELECT 1"}
	svc := NewLLMService(gen, &fakeExecutor{}, zap.NewNop())

	_, err := svc.Answer(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrEmptyQuestion)
	assert.Zero(t, gen.Calls)
}

func TestLLMAnswer_InjectionQuestionNeverReachesModel(t *testing.T) {
	gen := &llm.MockGenerator{SQL: "SELECT 1"}
	svc := NewLLMService(gen, &fakeExecutor{}, zap.NewNop())

	_, err := svc.Answer(context.Background(), "' OR 1=1 --")
	assert.ErrorIs(t, err, apperrors.ErrUnsafeQuestion)
	assert.Zero(t, gen.Calls, "unsafe questions must not be sent upstream")
}

func TestLLMAnswer_GenerationFailurePropagates(t *testing.T) {
	upstream := llm.NewError(llm.ErrorTypeEndpoint, "server error", true, errors.New("HTTP 503"))
	gen := &llm.MockGenerator{Err: upstream}
	exec := &fakeExecutor{}
	svc := NewLLMService(gen, exec, zap.NewNop())

	_, err := svc.Answer(context.Background(), "¿Cuántos pedidos hubo en abril?")
	require.Error(t, err)
	assert.ErrorIs(t, err, upstream)
	assert.Zero(t, exec.calls, "no SQL may run when generation fails")
}

func TestLLMAnswer_RejectsNonSelectSQL(t *testing.T) {
	tests := []struct {
		name string
		sql  string
	}{
		{"drop table", "DROP TABLE product_template"},
		{"delete", "DELETE FROM sale_order"},
		{"stacked statements", "SELECT 1; DELETE FROM sale_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &llm.MockGenerator{SQL: tt.sql}
			exec := &fakeExecutor{}
			svc := NewLLMService(gen, exec, zap.NewNop())

			answer, err := svc.Answer(context.Background(), "¿Cuántos pedidos hubo en abril?")
			require.NoError(t, err)

			assert.Equal(t, StatusRejected, answer.Status)
			assert.Contains(t, answer.Results["error"], "rechazada")
			assert.Zero(t, exec.calls, "rejected SQL must not execute")
		})
	}
}

func TestLLMAnswer_ExecutionFaultStaysInPayload(t *testing.T) {
	gen := &llm.MockGenerator{SQL: "SELECT * FROM tabla_inexistente"}
	exec := &fakeExecutor{err: errors.New("no such table: tabla_inexistente")}
	svc := NewLLMService(gen, exec, zap.NewNop())

	answer, err := svc.Answer(context.Background(), "¿Qué hay en la tabla inexistente?")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, answer.Status)
	assert.Contains(t, answer.Results["error"], "no such table")
}

func TestLLMAnswer_EmptyResultIsDistinctStatus(t *testing.T) {
	gen := &llm.MockGenerator{SQL: "SELECT name FROM product_template WHERE 1 = 0"}
	exec := &fakeExecutor{result: &executor.QueryResult{
		Columns: []string{"name"},
		Rows:    []map[string]any{},
	}}
	svc := NewLLMService(gen, exec, zap.NewNop())

	answer, err := svc.Answer(context.Background(), "¿Qué productos no existen?")
	require.NoError(t, err)
	assert.Equal(t, StatusNoResults, answer.Status)
}
