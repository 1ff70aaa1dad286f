package llm

import "context"

// MockGenerator is a test double for SQLGenerator.
type MockGenerator struct {
	SQL   string
	Err   error
	Calls int

	// LastQuestion records the most recent question passed in.
	LastQuestion string
}

// GenerateSQL returns the canned SQL or error.
func (m *MockGenerator) GenerateSQL(_ context.Context, question string) (string, error) {
	m.Calls++
	m.LastQuestion = question
	if m.Err != nil {
		return "", m.Err
	}
	return m.SQL, nil
}
