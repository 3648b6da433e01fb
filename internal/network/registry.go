package network

import (
	"sort"
	"sync"

	"harvest-sun/pkg/api"
	"harvest-sun/pkg/logger"

	"github.com/sirupsen/logrus"
)

// outboxSize - размер личного канала сессии
const outboxSize = 64

// Summarizer отдает краткое описание сессии для /debug/sessions
type Summarizer interface {
	Summary() api.SessionSummary
}

type session struct {
	outbox chan api.ServerResponse
	probe  Summarizer
}

// Registry хранит активные сессии и их исходящие каналы
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*session
	log      *logrus.Entry
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*session),
		log:      logger.Log.WithField("component", "registry"),
	}
}

// Register создает личный канал для сессии. Старый канал с тем же ID закрывается.
func (r *Registry) Register(id string, probe Summarizer) chan api.ServerResponse {
	r.mu.Lock()
	defer r.mu.Unlock()

	if old, ok := r.sessions[id]; ok {
		close(old.outbox)
	}

	ch := make(chan api.ServerResponse, outboxSize)
	r.sessions[id] = &session{outbox: ch, probe: probe}
	r.log.WithFields(logrus.Fields{"session": id, "total": len(r.sessions)}).Info("session registered")
	return ch
}

// Unregister удаляет сессию и закрывает её канал
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[id]; ok {
		close(s.outbox)
		delete(r.sessions, id)
		r.log.WithFields(logrus.Fields{"session": id, "total": len(r.sessions)}).Info("session closed")
	}
}

// SendTo отправляет сообщение одной сессии. Возвращает false, если сессии нет или канал переполнен.
func (r *Registry) SendTo(id string, msg api.ServerResponse) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return false
	}
	select {
	case s.outbox <- msg:
		return true
	default:
		r.log.WithField("session", id).Warn("outbox full, message dropped")
		return false
	}
}

// Broadcast отправляет сообщение всем сессиям (например, при остановке сервера)
func (r *Registry) Broadcast(msg api.ServerResponse) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		select {
		case s.outbox <- msg:
		default:
		}
	}
}

// Count возвращает количество активных сессий
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sessions возвращает описания всех сессий, отсортированные по ID.
// Summary вызывается вне блокировки реестра.
func (r *Registry) Sessions() []api.SessionSummary {
	r.mu.RLock()
	probes := make(map[string]Summarizer, len(r.sessions))
	for id, s := range r.sessions {
		probes[id] = s.probe
	}
	r.mu.RUnlock()

	list := make([]api.SessionSummary, 0, len(probes))
	for id, probe := range probes {
		sum := api.SessionSummary{}
		if probe != nil {
			sum = probe.Summary()
		}
		sum.ID = id
		list = append(list, sum)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
