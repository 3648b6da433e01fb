package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Специальные клавиши
const (
	KeyNone      rune = 0
	KeyEnter     rune = '\n'
	KeyBackspace rune = '\b'
	KeySpace     rune = ' '
)

// MaxDigits - вместимость буфера числового ввода
const MaxDigits = 8

// maxParseDigits - строки длиннее не превращаются в число
const maxParseDigits = 9

var (
	ErrEmptyNumber   = errors.New("empty number")
	ErrNumberTooLong = errors.New("number too long")
	ErrNotANumber    = errors.New("not a number")
)

// Input - одно событие ввода: клавиша или готовая строка (для имени игрока)
type Input struct {
	Key    rune
	Text   string
	IsText bool
}

// KeyInput создает событие нажатия клавиши. Буквы приводятся к верхнему регистру.
func KeyInput(r rune) Input {
	if r == '\r' {
		r = KeyEnter
	}
	if r == 0x7f {
		r = KeyBackspace
	}
	return Input{Key: unicode.ToUpper(r)}
}

// TextInput создает событие ввода строки
func TextInput(s string) Input {
	return Input{Text: s, IsText: true}
}

var keyTokens = map[string]rune{
	"ENTER":     KeyEnter,
	"RETURN":    KeyEnter,
	"SPACE":     KeySpace,
	"BACKSPACE": KeyBackspace,
	"DELETE":    KeyBackspace,
}

// ParseKey разбирает клавишу из текстового представления: один символ или имя ("ENTER", "SPACE", "BACKSPACE")
func ParseKey(token string) (Input, error) {
	if r, ok := keyTokens[strings.ToUpper(token)]; ok {
		return KeyInput(r), nil
	}
	runes := []rune(token)
	if len(runes) != 1 {
		return Input{}, fmt.Errorf("unknown key %q", token)
	}
	return KeyInput(runes[0]), nil
}

func (in Input) String() string {
	if in.IsText {
		return fmt.Sprintf("TEXT(%q)", in.Text)
	}
	switch in.Key {
	case KeyEnter:
		return "ENTER"
	case KeySpace:
		return "SPACE"
	case KeyBackspace:
		return "BACKSPACE"
	}
	return string(in.Key)
}

// IsDigit - клавиша является цифрой
func (in Input) IsDigit() bool {
	return !in.IsText && in.Key >= '0' && in.Key <= '9'
}

// NumericInput - ограниченный буфер для ввода количества
type NumericInput struct {
	digits []byte
}

// Append добавляет цифру. Возвращает false, если это не цифра или буфер полон.
func (n *NumericInput) Append(r rune) bool {
	if r < '0' || r > '9' || len(n.digits) >= MaxDigits {
		return false
	}
	n.digits = append(n.digits, byte(r))
	return true
}

// Backspace стирает последнюю цифру
func (n *NumericInput) Backspace() bool {
	if len(n.digits) == 0 {
		return false
	}
	n.digits = n.digits[:len(n.digits)-1]
	return true
}

// Clear очищает буфер
func (n *NumericInput) Clear() {
	n.digits = n.digits[:0]
}

func (n *NumericInput) Len() int {
	return len(n.digits)
}

func (n *NumericInput) String() string {
	return string(n.digits)
}

// Value возвращает введённое число
func (n *NumericInput) Value() (int, error) {
	return ParseAmount(n.String())
}

// ParseAmount превращает строку цифр в число.
// Пустые строки, строки длиннее 9 символов и нецифровые символы отклоняются.
func ParseAmount(s string) (int, error) {
	if s == "" {
		return 0, ErrEmptyNumber
	}
	if len(s) > maxParseDigits {
		return 0, ErrNumberTooLong
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return v, nil
}
