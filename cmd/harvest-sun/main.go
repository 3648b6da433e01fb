package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"harvest-sun/internal/engine"
	"harvest-sun/internal/infrastructure/storage"
	"harvest-sun/internal/server"
	"harvest-sun/internal/terminal"
	"harvest-sun/internal/version"
	"harvest-sun/pkg/api"
	"harvest-sun/pkg/logger"

	"github.com/joho/godotenv"
)

func init() {
	// .env необязателен: переменные окружения процесса имеют приоритет
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		os.Stderr.WriteString("failed to read .env: " + err.Error() + "\n")
	}
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var configPath, scriptPath string
	var serve bool
	flag.StringVar(&configPath, "config", "", "Path to a YAML config overlay")
	flag.StringVar(&scriptPath, "script", "", "Path to a key script to play headless")
	flag.BoolVar(&serve, "serve", false, "Serve sessions over WebSocket instead of the terminal")
	flag.Parse()

	logger.Log.Info("Starting Harvest Sun...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		loaded, err := engine.LoadConfig(configPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to load config")
		}
		cfg = loaded
	}
	cfg.Mode, cfg.DebugScene = engine.ParseMode(flag.Args())

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		logger.Log.WithError(err).Fatal("failed to load catalog")
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// РЕЖИМ СЕРВЕРА
	if serve {
		port := os.Getenv("HS_PORT")
		if port == "" {
			port = "8080"
		}
		if err := server.New(cfg, catalog, port).Run(ctx); err != nil {
			logger.Log.WithError(err).Fatal("server stopped")
		}
		logger.Log.Info("Done.")
		return
	}

	game := engine.NewGame(cfg, catalog)
	out := terminal.NewRenderer(os.Stdout)

	// РЕЖИМ СЦЕНАРИЯ: проигрываем ввод и показываем последний кадр
	if scriptPath != "" {
		script, err := storage.LoadScript(scriptPath)
		if err != nil {
			logger.Log.WithError(err).Fatal("failed to load script")
		}
		logger.Log.WithField("inputs", script.Len()).Info("playing script")

		last := &lastFrame{}
		if err := engine.Run(ctx, game, script, last); err != nil {
			logger.Log.WithError(err).Fatal("script failed")
		}
		if last.snap != nil {
			if err := out.Render(last.snap); err != nil {
				logger.Log.WithError(err).Fatal("render failed")
			}
		}
		return
	}

	src := terminal.NewLineSource(os.Stdin)
	err = engine.Run(ctx, game, src, out)
	src.Close()
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Fatal("game stopped")
	}
	logger.Log.Info("Done.")
}

// lastFrame запоминает только последний снимок
type lastFrame struct {
	snap *api.Snapshot
}

func (f *lastFrame) Render(snap *api.Snapshot) error {
	f.snap = snap
	return nil
}
