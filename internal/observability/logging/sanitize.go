package logging

import (
	"regexp"
)

var (
	// user:password inside a URL or DSN.
	urlPasswordPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// key=value DSN form, e.g. "host=db password=secret".
	kvPasswordPattern = regexp.MustCompile(`(?i)\b(password|passwd|pwd)=([^\s&]+)`)

	// Authorization header values echoed into error text.
	authHeaderPattern = regexp.MustCompile(`(?i)\b(basic|bearer)\s+[A-Za-z0-9+/=._-]{8,}`)
)

// SanitizeError returns err's message with credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = urlPasswordPattern.ReplaceAllString(msg, "://$1:****@")
	msg = kvPasswordPattern.ReplaceAllString(msg, "$1=****")
	msg = authHeaderPattern.ReplaceAllString(msg, "$1 ****")
	return msg
}
