package api

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// MaxTextLength - предел длины строки от клиента
const MaxTextLength = 64

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

var namedKeys = map[string]bool{
	"ENTER":     true,
	"RETURN":    true,
	"SPACE":     true,
	"BACKSPACE": true,
	"DELETE":    true,
}

func (p KeyPayload) Validate() error {
	if p.Key == "" {
		return errors.New("key is required")
	}
	if namedKeys[strings.ToUpper(p.Key)] {
		return nil
	}
	if utf8.RuneCountInString(p.Key) != 1 {
		return errors.New("key must be a single character or a named key")
	}
	return nil
}

func (p TextPayload) Validate() error {
	if utf8.RuneCountInString(p.Text) > MaxTextLength {
		return errors.New("text too long")
	}
	if strings.ContainsAny(p.Text, "\r\n") {
		return errors.New("text must be a single line")
	}
	return nil
}
