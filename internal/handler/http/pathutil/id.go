package pathutil

import (
	"errors"
	"strings"
)

// MaxDocumentIDLength is the engine's limit on a document _id in bytes.
const MaxDocumentIDLength = 512

var (
	// ErrEmptyID is returned for a blank article id.
	ErrEmptyID = errors.New("article id must not be empty")
	// ErrInvalidID is returned for an id the engine could never hold.
	ErrInvalidID = errors.New("invalid article id: too long")
)

// ValidateDocumentID trims the path value and checks it can name a document.
// Document ids are opaque strings, so anything non-blank up to
// MaxDocumentIDLength bytes is accepted.
func ValidateDocumentID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", ErrEmptyID
	}
	if len(id) > MaxDocumentIDLength {
		return "", ErrInvalidID
	}
	return id, nil
}
