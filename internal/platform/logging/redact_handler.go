package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders lists lowercase HTTP header names that carry credentials.
// The HTTP logging middleware and the masq layer both read it.
var SensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"cookie":        true,
	"set-cookie":    true,
}

// Fields masked wherever they appear, including inside groups and structs.
var (
	// Account personal data.
	personalFields = []string{"email", "full_name", "fullname"}
	secretFields   = []string{"password", "secret", "token", "dsn"}
	secretPrefixes = []string{"secret_", "api_key", "access_token"}
)

// Values masked whatever their key is.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)
	// Three long base64url segments. Short dotted strings such as version
	// numbers do not match.
	jwtPattern          = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)
	apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)
	emailPattern        = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
)

// newRedactAttr returns the masq ReplaceAttr used by New.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	var opts []masq.Option
	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range personalFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range secretFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range secretPrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}
	for _, re := range []*regexp.Regexp{bearerPattern, jwtPattern, apiKeyInlinePattern, emailPattern} {
		opts = append(opts, masq.WithRegex(re))
	}
	return masq.New(opts...)
}
