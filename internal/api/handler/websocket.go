package handler

import (
	"net/http"

	"github.com/wagnerjunior3121/pc-backend/internal/ws"
)

// WebsocketHandler entrega a conexão ao hub de eventos do painel.
func WebsocketHandler(hub *ws.Hub) http.HandlerFunc {
	return hub.HandleConnection
}
