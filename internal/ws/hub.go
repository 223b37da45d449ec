// Package ws mantém as conexões websocket do painel e propaga eventos de
// atualização de dados para os clientes conectados.
package ws

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/wagnerjunior3121/pc-backend/pkg/log"
)

// Eventos emitidos para o painel recarregar os dados.
const (
	EventSheetUpdated = "sheet-updated"
	EventAssetUpdated = "asset-updated"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// HandleConnection promove a requisição para websocket e registra o
// cliente até a desconexão.
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("falha ao promover conexão websocket")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	total := len(h.clients)
	h.mu.Unlock()

	log.L.WithField("clientes", total).Info("cliente websocket conectado")

	go h.readLoop(conn)
}

// readLoop consome mensagens até o cliente desconectar. O painel não envia
// nada relevante; o loop existe para detectar o fechamento.
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	total := len(h.clients)
	h.mu.Unlock()

	_ = conn.Close()
	log.L.WithField("clientes", total).Info("cliente websocket desconectado")
}

// Broadcast envia o nome do evento para todos os clientes. Conexões com
// erro de escrita são descartadas.
func (h *Hub) Broadcast(event string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(event)); err != nil {
			delete(h.clients, conn)
			_ = conn.Close()
		}
	}
}
