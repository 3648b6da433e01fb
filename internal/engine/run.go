package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"harvest-sun/pkg/api"
)

// InputSource выдаёт по одному событию ввода за вызов.
// wantText == true означает, что игра ждёт строку целиком (имя игрока).
type InputSource interface {
	Next(ctx context.Context, wantText bool) (Input, error)
}

// Renderer отображает снимок игры
type Renderer interface {
	Render(snap *api.Snapshot) error
}

// Run крутит цикл "отрисовка - ввод - шаг" до выхода из игры, отмены контекста
// или конца ввода (io.EOF считается нормальным завершением).
func Run(ctx context.Context, g *Game, src InputSource, out Renderer) error {
	for {
		if err := out.Render(g.BuildSnapshot()); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		if g.Done() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		in, err := src.Next(ctx, g.WantsText())
		if err != nil {
			if errors.Is(err, io.EOF) {
				g.log.Debug("input exhausted")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		g.log.WithField("input", in.String()).Trace("step")
		g.Step(in)
	}
}
