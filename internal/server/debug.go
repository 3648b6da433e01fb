package server

import (
	"encoding/json"
	"net/http"

	"harvest-sun/internal/network"
)

// DebugHandler предоставляет доступ к активным сессиям
type DebugHandler struct {
	Registry *network.Registry
}

func NewDebugHandler(r *network.Registry) *DebugHandler {
	return &DebugHandler{Registry: r}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/sessions", h.handleSessions)
}

// /debug/sessions - список сессий: имя, сцена, день, золото, энергия
func (h *DebugHandler) handleSessions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Registry.Sessions())
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (локальный debug-клиент)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
