package utils

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

// SessionPrefix отличает id игровых сессий в логах и /debug/sessions
const SessionPrefix = "farm-"

var idEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewSessionID - "farm-" и 16 символов base32 в нижнем регистре (10 случайных байт)
func NewSessionID() (string, error) {
	b := make([]byte, 10)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("session id: %w", err)
	}
	return SessionPrefix + strings.ToLower(idEncoding.EncodeToString(b)), nil
}
