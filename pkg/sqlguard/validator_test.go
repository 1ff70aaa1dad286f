package sqlguard

import (
	"errors"
	"testing"
)

func TestValidateAndNormalize_ValidQueries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple select without semicolon",
			input:    "SELECT 1",
			expected: "SELECT 1",
		},
		{
			name:     "trailing semicolon stripped",
			input:    "SELECT * FROM product_template;",
			expected: "SELECT * FROM product_template",
		},
		{
			name:     "trailing semicolon and whitespace",
			input:    "SELECT * FROM sale_order ;  ",
			expected: "SELECT * FROM sale_order",
		},
		{
			name:     "semicolon inside single quoted string",
			input:    "SELECT * FROM res_partner WHERE name = 'a;b'",
			expected: "SELECT * FROM res_partner WHERE name = 'a;b'",
		},
		{
			name:     "SQL standard escaped single quote",
			input:    "SELECT * FROM res_partner WHERE name = 'O''Brien'",
			expected: "SELECT * FROM res_partner WHERE name = 'O''Brien'",
		},
		{
			name:     "semicolon inside double quoted identifier",
			input:    `SELECT * FROM "tabla;rara"`,
			expected: `SELECT * FROM "tabla;rara"`,
		},
		{
			name:     "multiline query with trailing semicolon",
			input:    "SELECT p.name\nFROM product_template p\nWHERE p.is_active = 1;",
			expected: "SELECT p.name\nFROM product_template p\nWHERE p.is_active = 1",
		},
		{
			name:     "sql code fence",
			input:    "```sql\nSELECT name FROM product_template;\n```",
			expected: "SELECT name FROM product_template",
		},
		{
			name:     "bare code fence",
			input:    "```\nSELECT 1\n```",
			expected: "SELECT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndNormalize(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestValidateAndNormalize_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "two statements",
			input:   "SELECT 1; DROP TABLE product_template",
			wantErr: ErrMultipleStatements,
		},
		{
			name:    "injection with terminator",
			input:   "SELECT * FROM res_partner; DELETE FROM res_partner;",
			wantErr: ErrMultipleStatements,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrEmptyStatement,
		},
		{
			name:    "whitespace only",
			input:   "   \n\t",
			wantErr: ErrEmptyStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndNormalize(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDetectStatementType(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  StatementType
	}{
		{"select", "SELECT * FROM sale_order", TypeSelect},
		{"lowercase select", "select 1", TypeSelect},
		{"select with leading whitespace", "  \n SELECT 1", TypeSelect},
		{"cte select", "WITH ventas AS (SELECT * FROM sale_order) SELECT * FROM ventas", TypeSelect},
		{"modifying cte", "WITH borrados AS (DELETE FROM sale_order RETURNING *) SELECT * FROM borrados", TypeUnknown},
		{"insert", "INSERT INTO res_partner (name) VALUES ('x')", TypeInsert},
		{"update", "UPDATE product_template SET list_price = 0", TypeUpdate},
		{"delete", "DELETE FROM sale_order", TypeDelete},
		{"create", "CREATE TABLE t (id INTEGER)", TypeDDL},
		{"drop", "DROP TABLE product_template", TypeDDL},
		{"pragma", "PRAGMA table_info(sale_order)", TypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectStatementType(tt.input); got != tt.want {
				t.Errorf("DetectStatementType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEnsureReadOnly(t *testing.T) {
	got, err := EnsureReadOnly("```sql\nSELECT name FROM product_template;\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "SELECT name FROM product_template" {
		t.Errorf("got %q", got)
	}

	if _, err := EnsureReadOnly("DROP TABLE product_template"); !errors.Is(err, ErrNotReadOnly) {
		t.Errorf("expected ErrNotReadOnly, got %v", err)
	}
	if _, err := EnsureReadOnly("SELECT 1; SELECT 2"); !errors.Is(err, ErrMultipleStatements) {
		t.Errorf("expected ErrMultipleStatements, got %v", err)
	}
}

func TestCheckQuestionForInjection(t *testing.T) {
	if check := CheckQuestionForInjection("¿Cuáles son los productos más vendidos?"); check != nil {
		t.Errorf("clean question flagged: %+v", check)
	}

	check := CheckQuestionForInjection("' OR 1=1 --")
	if check == nil || !check.IsSQLi {
		t.Error("classic injection pattern not flagged")
	}
}
