package ws

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/ccjb/compliance-backend/internal/domain/entities"
	"github.com/ccjb/compliance-backend/internal/domain/ports"
	"github.com/ccjb/compliance-backend/internal/handlers/dto"
	"github.com/ccjb/compliance-backend/internal/handlers/middleware"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Hub mantém as conexões WebSocket abertas por usuário e empurra
// notificações recém-criadas. Implementa ports.NotificationPusher.
// Entrega é melhor esforço: usuário desconectado recebe pela listagem.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]map[*client]struct{}
	upgrader websocket.Upgrader
	logger   ports.Logger
}

type client struct {
	conn *websocket.Conn
	send chan dto.NotificationResponse
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Origem já foi validada pelo middleware de CORS
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Push envia a notificação a todas as conexões abertas do destinatário
func (h *Hub) Push(notification *entities.Notification) {
	payload := dto.ToNotificationResponse(notification)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients[notification.UserID] {
		select {
		case c.send <- payload:
		default:
			// Cliente lento: descarta em vez de bloquear o push
			h.logger.Warn("notification push dropped, client buffer full",
				"user_id", notification.UserID,
			)
		}
	}
}

// Serve faz o upgrade da conexão e registra o cliente do usuário autenticado
func (h *Hub) Serve(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	cl := &client{
		conn: conn,
		send: make(chan dto.NotificationResponse, 16),
	}
	h.register(actorID, cl)

	go h.writeLoop(actorID, cl)
	go h.readLoop(actorID, cl)
}

func (h *Hub) register(userID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*client]struct{})
	}
	h.clients[userID][cl] = struct{}{}
}

func (h *Hub) unregister(userID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[userID]; ok {
		if _, ok := conns[cl]; ok {
			delete(conns, cl)
			close(cl.send)
			if len(conns) == 0 {
				delete(h.clients, userID)
			}
		}
	}
}

// readLoop consome mensagens do cliente apenas para detectar desconexão
func (h *Hub) readLoop(userID string, cl *client) {
	defer func() {
		h.unregister(userID, cl)
		cl.conn.Close()
	}()

	cl.conn.SetReadLimit(512)
	_ = cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	cl.conn.SetPongHandler(func(string) error {
		return cl.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := cl.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writeLoop(userID string, cl *client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		cl.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-cl.send:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = cl.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := cl.conn.WriteJSON(payload); err != nil {
				h.logger.Warn("notification push write failed", "user_id", userID, "error", err)
				return
			}
		case <-ticker.C:
			_ = cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := cl.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
