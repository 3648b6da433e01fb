package storage

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"harvest-sun/internal/engine"
)

// Формат файла сценария:
//
//	# комментарий
//	ENTER            именованная клавиша (ENTER, SPACE, BACKSPACE...)
//	xc 40            каждый символ токена - отдельная клавиша
//	>Ann             строка целиком (ввод имени)
const (
	commentPrefix = "#"
	textPrefix    = ">"
)

// Script - заранее записанная последовательность ввода. Реализует engine.InputSource.
type Script struct {
	inputs []engine.Input
	pos    int
}

// LoadScript читает сценарий из файла
func LoadScript(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// ParseScript разбирает сценарий построчно
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)

	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, commentPrefix) {
			continue
		}

		if text, ok := strings.CutPrefix(raw, textPrefix); ok {
			s.inputs = append(s.inputs, engine.TextInput(strings.TrimSpace(text)))
			continue
		}

		inputs, err := ParseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		s.inputs = append(s.inputs, inputs...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return s, nil
}

// ParseLine разбирает строку клавиш: токены через пробел, именованные или посимвольные
func ParseLine(line string) ([]engine.Input, error) {
	var inputs []engine.Input
	for _, token := range strings.Fields(line) {
		keys, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, keys...)
	}
	return inputs, nil
}

func parseToken(token string) ([]engine.Input, error) {
	// Именованная клавиша или одиночный символ
	if in, err := engine.ParseKey(token); err == nil {
		return []engine.Input{in}, nil
	}

	runes := []rune(token)
	if len(runes) < 2 {
		return nil, fmt.Errorf("invalid token %q", token)
	}
	inputs := make([]engine.Input, 0, len(runes))
	for _, r := range runes {
		inputs = append(inputs, engine.KeyInput(r))
	}
	return inputs, nil
}

// Next возвращает следующее событие или io.EOF, когда сценарий закончился
func (s *Script) Next(ctx context.Context, _ bool) (engine.Input, error) {
	if err := ctx.Err(); err != nil {
		return engine.Input{}, err
	}
	if s.pos >= len(s.inputs) {
		return engine.Input{}, io.EOF
	}
	in := s.inputs[s.pos]
	s.pos++
	return in, nil
}

// Len - количество событий в сценарии
func (s *Script) Len() int { return len(s.inputs) }

// Remaining - сколько событий ещё не прочитано
func (s *Script) Remaining() int { return len(s.inputs) - s.pos }
