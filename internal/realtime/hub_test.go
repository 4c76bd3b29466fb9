package realtime

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/holonet/holonet-backend/internal/infrastructure/logging"
)

func newWSServer(t *testing.T, allowedOrigins []string) (*Hub, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub(logging.NewSlogLoggerWithWriter("error", io.Discard))

	router := gin.New()
	router.GET("/ws", hub.Handler(allowedOrigins))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return hub, srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
}

func waitForCount(t *testing.T, hub *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() != want {
		if time.Now().After(deadline) {
			t.Fatalf("conexões = %d, esperava %d", hub.Count(), want)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestHubRegistraEDesconecta(t *testing.T) {
	hub, srv := newWSServer(t, []string{"*"})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), nil)
	if err != nil {
		t.Fatalf("falha inesperada ao conectar: %v", err)
	}

	if hub.Count() != 1 {
		t.Errorf("conexões = %d, esperava 1", hub.Count())
	}

	// Mensagens recebidas são descartadas sem derrubar a conexão
	if err := conn.WriteMessage(websocket.TextMessage, []byte("olá")); err != nil {
		t.Fatalf("falha inesperada ao enviar mensagem: %v", err)
	}

	conn.Close()
	waitForCount(t, hub, 0)
}

func TestHubAplicaPoliticaDeOrigem(t *testing.T) {
	_, srv := newWSServer(t, []string{"https://holonet.app"})

	t.Run("origem permitida conecta", func(t *testing.T) {
		header := http.Header{"Origin": []string{"https://holonet.app"}}
		conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header)
		if err != nil {
			t.Fatalf("falha inesperada ao conectar: %v", err)
		}
		conn.Close()
	})

	t.Run("origem proibida é recusada", func(t *testing.T) {
		header := http.Header{"Origin": []string{"https://imperio.gov"}}
		if _, _, err := websocket.DefaultDialer.Dial(wsURL(srv), header); err == nil {
			t.Error("esperava recusa do upgrade para origem proibida")
		}
	})
}
