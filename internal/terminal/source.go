package terminal

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"

	"harvest-sun/internal/engine"
	"harvest-sun/internal/infrastructure/storage"
)

type lineResult struct {
	line string
	err  error
}

// LineSource читает ввод построчно. Пустая строка - Enter, остальные символы строки - отдельные клавиши.
// Когда игра ждёт имя, строка передается целиком.
type LineSource struct {
	r       io.Reader
	once    sync.Once
	stop    sync.Once
	lines   chan lineResult
	done    chan struct{}
	exited  chan struct{} // закрывается, когда фоновое чтение завершилось
	pending []engine.Input
}

func NewLineSource(r io.Reader) *LineSource {
	return &LineSource{
		r:     r,
		lines:  make(chan lineResult, 1),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// Close останавливает фоновое чтение. Горутина завершится после текущей строки.
func (s *LineSource) Close() {
	s.stop.Do(func() { close(s.done) })
}

func (s *LineSource) start() {
	go func() {
		defer close(s.exited)
		defer close(s.lines)

		sc := bufio.NewScanner(s.r)
		for sc.Scan() {
			if !s.send(lineResult{line: sc.Text()}) {
				return
			}
		}
		err := sc.Err()
		if err == nil {
			err = io.EOF
		}
		s.send(lineResult{err: err})
	}()
}

func (s *LineSource) send(res lineResult) bool {
	select {
	case s.lines <- res:
		return true
	case <-s.done:
		return false
	}
}

// Next реализует engine.InputSource
func (s *LineSource) Next(ctx context.Context, wantText bool) (engine.Input, error) {
	if wantText {
		// Остаток предыдущей строки к имени не относится
		s.pending = nil
	}

	for len(s.pending) == 0 {
		line, err := s.readLine(ctx)
		if err != nil {
			return engine.Input{}, err
		}

		if wantText {
			return engine.TextInput(strings.TrimSpace(line)), nil
		}
		if strings.TrimSpace(line) == "" {
			return engine.KeyInput(engine.KeyEnter), nil
		}

		inputs, err := storage.ParseLine(line)
		if err != nil {
			return engine.Input{}, err
		}
		s.pending = inputs
	}

	in := s.pending[0]
	s.pending = s.pending[1:]
	return in, nil
}

func (s *LineSource) readLine(ctx context.Context) (string, error) {
	s.once.Do(s.start)

	select {
	case <-ctx.Done():
		s.Close()
		return "", ctx.Err()
	case <-s.done:
		return "", io.EOF
	case res, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}
