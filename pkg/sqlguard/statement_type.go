package sqlguard

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNotReadOnly indicates the statement is not a plain SELECT and must not
// run against the snapshot.
var ErrNotReadOnly = errors.New("only SELECT statements are allowed")

// StatementType classifies a SQL statement by its leading keyword.
type StatementType string

const (
	TypeSelect  StatementType = "SELECT"
	TypeInsert  StatementType = "INSERT"
	TypeUpdate  StatementType = "UPDATE"
	TypeDelete  StatementType = "DELETE"
	TypeDDL     StatementType = "DDL"     // CREATE, ALTER, DROP, TRUNCATE
	TypeUnknown StatementType = "UNKNOWN" // Unrecognized or blocked statement types
)

// modifyingCTEPattern matches CTEs that contain data-modifying operations.
// Example: WITH deleted AS (DELETE FROM ...) SELECT * FROM deleted
var modifyingCTEPattern = regexp.MustCompile(`(?i)\bAS\s*\(\s*(INSERT|UPDATE|DELETE)\b`)

// DetectStatementType determines the statement type from the first keyword.
// WITH-prefixed statements count as SELECT unless the CTE modifies data.
func DetectStatementType(sqlQuery string) StatementType {
	normalized := strings.ToUpper(strings.TrimSpace(sqlQuery))

	switch {
	case strings.HasPrefix(normalized, "SELECT"):
		return TypeSelect

	case strings.HasPrefix(normalized, "WITH"):
		if modifyingCTEPattern.MatchString(sqlQuery) {
			return TypeUnknown
		}
		return TypeSelect

	case strings.HasPrefix(normalized, "INSERT"):
		return TypeInsert

	case strings.HasPrefix(normalized, "UPDATE"):
		return TypeUpdate

	case strings.HasPrefix(normalized, "DELETE"):
		return TypeDelete

	case strings.HasPrefix(normalized, "CREATE"),
		strings.HasPrefix(normalized, "ALTER"),
		strings.HasPrefix(normalized, "DROP"),
		strings.HasPrefix(normalized, "TRUNCATE"):
		return TypeDDL

	default:
		return TypeUnknown
	}
}

// EnsureReadOnly normalizes the statement and verifies it is a single
// SELECT. Returns the normalized SQL ready for execution.
func EnsureReadOnly(sqlQuery string) (string, error) {
	normalized, err := ValidateAndNormalize(sqlQuery)
	if err != nil {
		return "", err
	}
	if DetectStatementType(normalized) != TypeSelect {
		return "", ErrNotReadOnly
	}
	return normalized, nil
}
