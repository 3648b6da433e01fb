package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"harvest-sun/internal/engine"
	"harvest-sun/internal/network"
	"harvest-sun/pkg/api"
	"harvest-sun/pkg/logger"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

var errUnknownAction = errors.New("unknown action")

// Client - посредник между WebSocket и игровой сессией
type Client struct {
	ID       string
	Conn     *websocket.Conn
	Registry *network.Registry

	mu   sync.Mutex
	game *engine.Game
	log  *logrus.Entry
}

func NewClient(id string, game *engine.Game, conn *websocket.Conn, registry *network.Registry) *Client {
	return &Client{
		ID:       id,
		Conn:     conn,
		Registry: registry,
		game:     game,
		log:      logger.Log.WithFields(logrus.Fields{"component": "client", "session": id}),
	}
}

// Summary - краткое описание сессии для реестра
func (c *Client) Summary() api.SessionSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.game.Player
	return api.SessionSummary{
		ID:     c.ID,
		Name:   p.Name,
		Scene:  c.game.Scene().String(),
		Play:   c.game.PlayState().String(),
		Day:    p.Day,
		Gold:   p.Gold(),
		Energy: p.Energy(),
	}
}

// readPump читает команды клиента и по одной передает их игре.
// Соединение закрывает writePump, когда дочитает закрытый канал сессии.
func (c *Client) readPump() {
	defer func() {
		c.Registry.Unregister(c.ID)
		c.log.Info("client disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	c.log.Info("client connected")
	c.push("UPDATE")

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.log.WithError(err).Warn("websocket read failed")
			}
			return
		}

		if err := c.handle(cmd); err != nil {
			c.log.WithError(err).WithField("action", cmd.Action).Debug("command rejected")
			c.Registry.SendTo(c.ID, api.ServerResponse{Type: "ERROR", SessionID: c.ID, Error: err.Error()})
			continue
		}

		if c.done() {
			c.push("QUIT")
			return
		}
		c.push("UPDATE")
	}
}

// handle разбирает команду и выполняет один шаг игры
func (c *Client) handle(cmd api.ClientCommand) error {
	var in engine.Input

	switch cmd.Action {
	case "INIT":
		return nil

	case "KEY":
		var p api.KeyPayload
		if err := decodePayload(cmd.Payload, &p); err != nil {
			return err
		}
		key, err := engine.ParseKey(p.Key)
		if err != nil {
			return err
		}
		in = key

	case "TEXT":
		var p api.TextPayload
		if err := decodePayload(cmd.Payload, &p); err != nil {
			return err
		}
		in = engine.TextInput(p.Text)

	default:
		return fmt.Errorf("%w: %q", errUnknownAction, cmd.Action)
	}

	c.mu.Lock()
	c.game.Step(in)
	c.mu.Unlock()
	return nil
}

func decodePayload(raw json.RawMessage, dst api.Validator) error {
	if len(raw) == 0 {
		return errors.New("payload is required")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}
	return dst.Validate()
}

func (c *Client) done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.Done()
}

// push отправляет текущий снимок игры
func (c *Client) push(kind string) {
	c.mu.Lock()
	snap := c.game.BuildSnapshot()
	c.mu.Unlock()

	c.Registry.SendTo(c.ID, api.ServerResponse{Type: kind, SessionID: c.ID, State: snap})
}

// writePump отправляет данные клиенту + Ping. Владеет соединением:
// после закрытия outbox отправляет оставшиеся сообщения, close-кадр и закрывает conn.
func (c *Client) writePump(outbox <-chan api.ServerResponse) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	for {
		select {
		case message, ok := <-outbox:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set write deadline")
			}
			if !ok {
				msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
				if err := c.Conn.WriteMessage(websocket.CloseMessage, msg); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			if err := c.Conn.WriteJSON(message); err != nil {
				c.log.WithError(err).Debug("write json message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				c.log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}
