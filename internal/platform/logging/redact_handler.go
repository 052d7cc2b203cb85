package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names whose values carry
// credentials. The request logging middleware redacts them, and the masq
// layer below catches them again when logged as plain attributes.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// sensitiveFields are attribute keys redacted wherever they appear. People's
// mail addresses are personal data; the database settings carry passwords.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"mail_address",
	"dsn",
	"database_password",
}

var sensitivePrefixes = []string{"secret_", "api_key"}

// sensitiveValues catch secrets that reach a log under an innocent key.
var sensitiveValues = []*regexp.Regexp{
	// Bearer tokens.
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
	// JWTs; ten characters per segment keeps version strings out.
	regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`),
	// Inline api_key=... or apikey: ... pairs.
	regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`),
	// Mail addresses inside messages, e.g. a rejected registration.
	regexp.MustCompile(`[^@\s"'<>;]+@[^@\s"'<>;]+\.[a-zA-Z]{2,}`),
}

// newRedactAttr builds the masq ReplaceAttr hook used by every handler New
// creates.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0,
		len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+len(sensitiveValues))

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range sensitiveValues {
		opts = append(opts, masq.WithRegex(re))
	}

	return masq.New(opts...)
}
