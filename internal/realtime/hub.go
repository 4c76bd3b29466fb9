package realtime

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/holonet/holonet-backend/internal/domain/ports"
	"github.com/holonet/holonet-backend/internal/handlers/middleware"
)

// Hub mantém as conexões websocket ativas do chat. Conexão e desconexão
// são registradas; não há roteamento de mensagens entre clientes.
type Hub struct {
	mu     sync.Mutex
	conns  map[string]*websocket.Conn
	logger ports.Logger
}

// NewHub cria um novo Hub
func NewHub(logger ports.Logger) *Hub {
	return &Hub{
		conns:  make(map[string]*websocket.Conn),
		logger: logger,
	}
}

// Count retorna o número de conexões ativas
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// Handler faz o upgrade da conexão aplicando a mesma política de origem do
// REST e mantém a conexão aberta até o cliente desconectar
func (h *Hub) Handler(allowedOrigins []string) gin.HandlerFunc {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return middleware.OriginAllowed(allowedOrigins, r.Header.Get("Origin"))
		},
	}

	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.logger.Warn("websocket upgrade failed", "error", err)
			return
		}

		id := uuid.NewString()
		h.register(id, conn)
		h.logger.Info("websocket connected", "connection_id", id)

		go h.readLoop(id, conn)
	}
}

func (h *Hub) register(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[id] = conn
}

func (h *Hub) unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, id)
}

// readLoop descarta mensagens recebidas e encerra a conexão quando o
// cliente desconecta
func (h *Hub) readLoop(id string, conn *websocket.Conn) {
	defer func() {
		h.unregister(id)
		conn.Close()
		h.logger.Info("websocket disconnected", "connection_id", id)
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
