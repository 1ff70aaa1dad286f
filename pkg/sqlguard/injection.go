package sqlguard

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheck describes a SQL injection pattern detected in a question.
type InjectionCheck struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
}

// CheckQuestionForInjection screens a user question with libinjection
// before it is sent to the text-generation endpoint. Returns nil when the
// question is clean.
func CheckQuestionForInjection(question string) *InjectionCheck {
	isSQLi, fingerprint := libinjection.IsSQLi(question)
	if !isSQLi {
		return nil
	}
	return &InjectionCheck{
		IsSQLi:      true,
		Fingerprint: string(fingerprint),
	}
}
