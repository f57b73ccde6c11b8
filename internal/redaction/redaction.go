// Package redaction hides secret-looking values in environment listings.
package redaction

import (
	"regexp"
	"strings"
)

// sensitivePatterns match secret material regardless of the variable name.
var sensitivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)sk_live_[a-zA-Z0-9]+`),             // Stripe live keys
	regexp.MustCompile(`(?i)sk_test_[a-zA-Z0-9]+`),             // Stripe test keys
	regexp.MustCompile(`ghp_[a-zA-Z0-9]+`),                     // GitHub PATs
	regexp.MustCompile(`AKIA[0-9A-Z]{16}`),                     // AWS access key IDs
	regexp.MustCompile(`xoxb-[a-zA-Z0-9-]+`),                   // Slack bot tokens
	regexp.MustCompile(`-----BEGIN (?:RSA )?PRIVATE KEY-----`), // Private keys
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+`), // JWT tokens
}

// sensitiveKeyRe matches variable names that usually carry credentials,
// e.g. BAIDU_APP_SECRET or GOOGLE_API_KEY.
var sensitiveKeyRe = regexp.MustCompile(`(?i)(^|_)(api_?key|key|secret|token|password|passwd|credentials?)($|_)`)

const replacement = "[REDACTED]"

// SensitiveKey reports whether an environment variable name looks like it
// holds a credential.
func SensitiveKey(key string) bool {
	return sensitiveKeyRe.MatchString(key)
}

// RedactValue replaces any built-in secret pattern found in value.
func RedactValue(value string) string {
	for _, re := range sensitivePatterns {
		value = re.ReplaceAllString(value, replacement)
	}
	return value
}

// RedactEnv returns a copy of KEY=VALUE entries with secrets hidden. Entries
// whose key looks sensitive have their whole value replaced; all others go
// through RedactValue. Entries without '=' are kept as they are.
func RedactEnv(entries []string) []string {
	out := make([]string, 0, len(entries))
	for _, kv := range entries {
		key, val, ok := strings.Cut(kv, "=")
		switch {
		case !ok:
			out = append(out, kv)
		case SensitiveKey(key) && val != "":
			out = append(out, key+"="+replacement)
		default:
			out = append(out, key+"="+RedactValue(val))
		}
	}
	return out
}
