// Package sqlguard validates externally produced SQL before it reaches the
// snapshot. Generated text must be a single read-only statement.
package sqlguard

import (
	"errors"
	"strings"
)

var (
	// ErrMultipleStatements indicates the query contains multiple SQL statements.
	ErrMultipleStatements = errors.New("multiple SQL statements not allowed; only single statements are permitted")

	// ErrEmptyStatement indicates no SQL remained after normalization.
	ErrEmptyStatement = errors.New("empty SQL statement")
)

// ValidateAndNormalize strips Markdown code fences and the trailing
// semicolon, then rejects any remaining semicolon outside string literals.
//
// The validation order is:
// 1. Strip code fences the model may wrap the statement in
// 2. Strip trailing semicolon and whitespace (normalize)
// 3. Check for multiple statements (any remaining semicolons outside string literals)
func ValidateAndNormalize(sqlQuery string) (string, error) {
	sqlQuery = stripCodeFences(sqlQuery)
	sqlQuery = strings.TrimSpace(sqlQuery)
	if sqlQuery == "" {
		return "", ErrEmptyStatement
	}

	normalized := stripTrailingSemicolon(sqlQuery)

	if hasSemicolonOutsideStrings(normalized) {
		return "", ErrMultipleStatements
	}

	return normalized, nil
}

// stripCodeFences removes a surrounding ```sql ... ``` (or bare ```) block.
// Chat models routinely fence their SQL even when told not to.
func stripCodeFences(sqlQuery string) string {
	trimmed := strings.TrimSpace(sqlQuery)
	if !strings.HasPrefix(trimmed, "```") {
		return sqlQuery
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// Drop the language tag line ("sql", "sqlite", ...).
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine == "" || isLanguageTag(firstLine) {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

func isLanguageTag(s string) bool {
	switch strings.ToLower(s) {
	case "sql", "sqlite", "sqlite3":
		return true
	}
	return false
}

// hasSemicolonOutsideStrings returns true if the SQL contains any semicolon
// outside of string literals.
func hasSemicolonOutsideStrings(sqlQuery string) bool {
	const (
		stateNormal = iota
		stateSingleQuote
		stateDoubleQuote
	)

	state := stateNormal
	prevChar := rune(0)

	for _, char := range sqlQuery {
		switch state {
		case stateNormal:
			switch char {
			case ';':
				return true
			case '\'':
				state = stateSingleQuote
			case '"':
				state = stateDoubleQuote
			}
		case stateSingleQuote:
			// Handles both backslash escape (\') and SQL standard escape ('').
			// A doubled quote exits and immediately re-enters on the next
			// quote, which correctly keeps us inside the string.
			if char == '\'' && prevChar != '\\' {
				state = stateNormal
			}
		case stateDoubleQuote:
			if char == '"' && prevChar != '\\' {
				state = stateNormal
			}
		}
		prevChar = char
	}

	return false
}

// stripTrailingSemicolon removes a trailing semicolon and any whitespace
// around it.
func stripTrailingSemicolon(sqlQuery string) string {
	sqlQuery = strings.TrimRight(sqlQuery, " \t\n\r")
	if strings.HasSuffix(sqlQuery, ";") {
		sqlQuery = strings.TrimSuffix(sqlQuery, ";")
		sqlQuery = strings.TrimRight(sqlQuery, " \t\n\r")
	}
	return sqlQuery
}
