// Package redact scrubs sensitive fragments from strings before they are
// logged: connection strings, credentials, SQL text, constraint details
// echoed back by PostgreSQL, file paths, network addresses and stack traces.
package redact

import "regexp"

// Placeholders substituted for redacted fragments.
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedKeyDetailPlaceholder  = "[REDACTED_KEY_DETAIL]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// rules are applied in order; earlier rules may consume text later ones would match.
var rules = []rule{
	{regexp.MustCompile(`goroutine \d+ \[[^\]]*\]:[\s\S]*`), RedactedStackPlaceholder},
	{regexp.MustCompile(`(?i)\b(postgres|postgresql)://[^@\s]+@`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[=:]\s*\S+`), RedactedCredentialPlaceholder},
	{regexp.MustCompile(`(?i)key \([^)]*\)=\([^)]*\)`), RedactedKeyDetailPlaceholder},
	{regexp.MustCompile(`\b(SELECT|INSERT|UPDATE|DELETE)\b[^;]*?\b(FROM|INTO|SET)\b[^;]*`), RedactedSQLPlaceholder},
	{regexp.MustCompile(`(/[\w.-]+){2,}`), RedactedPathPlaceholder},
	{regexp.MustCompile(`\b[a-zA-Z0-9.-]+:\d{2,5}\b`), RedactedHostPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
