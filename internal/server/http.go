package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	_ "net/http/pprof" // Profiling
	"time"

	"harvest-sun/internal/domain"
	"harvest-sun/internal/engine"
	"harvest-sun/internal/network"
	"harvest-sun/internal/version"
	"harvest-sun/pkg/api"
	"harvest-sun/pkg/logger"
	"harvest-sun/pkg/utils"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server раздаёт игру по WebSocket: у каждого подключения своя сессия
type Server struct {
	Config   engine.Config
	Catalog  *domain.Catalog
	Registry *network.Registry
	Port     string
}

func New(cfg engine.Config, catalog *domain.Catalog, port string) *Server {
	if catalog == nil {
		catalog = domain.DefaultCatalog()
	}
	return &Server{
		Config:   cfg,
		Catalog:  catalog,
		Registry: network.NewRegistry(),
		Port:     port,
	}
}

// Handler собирает все маршруты сервера
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", enableCORS(s.handleWS))
	mux.HandleFunc("/health", enableCORS(s.handleHealth))
	mux.HandleFunc("/version", enableCORS(s.handleVersion))

	debugHandler := NewDebugHandler(s.Registry)
	debugHandler.RegisterRoutes(mux)

	// pprof регистрируется в DefaultServeMux
	mux.Handle("/debug/pprof/", http.DefaultServeMux)

	return mux
}

// Run запускает HTTP сервер и останавливает его при отмене контекста
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.Infof("Harvest Sun server running on :%s", s.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.Registry.Broadcast(api.ServerResponse{Type: "QUIT", Error: "server is shutting down"})

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func enableCORS(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		next(w, r)
	}
}

// handleWS обрабатывает подключение по WebSocket
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	id, err := utils.NewSessionID()
	if err != nil {
		logger.Log.WithError(err).Error("session id")
		http.Error(w, "session unavailable", http.StatusInternalServerError)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("upgrade failed")
		return
	}

	cfg := s.Config
	if cfg.Mode == engine.ModeDefault {
		// У удалённого клиента есть курсор
		cfg.Mode = engine.ModeFull
	}

	client := NewClient(id, engine.NewGame(cfg, s.Catalog), conn, s.Registry)
	outbox := s.Registry.Register(client.ID, client)

	go client.writePump(outbox)
	go client.readPump()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(version.Info())
}
