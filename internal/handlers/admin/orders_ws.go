package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"delices_back_end/internal/database"
	"delices_back_end/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// LiveOrders diffuse le fil des commandes en temps réel vers le back
// office : chaque création et changement de statut publié sur Redis est
// relayé tel quel sur la connexion WebSocket.
// GET /api/admin/orders/live
func (h *OrdersHandler) LiveOrders(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	ctx := context.Background()

	pubsub := database.Redis.Subscribe(ctx, store.OrdersFeedChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	conn.WriteJSON(map[string]interface{}{
		"type":    "connected",
		"message": "Fil des commandes activé",
	})

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}

			// Le payload publié par le store est déjà du JSON
			// {"type": ..., "order": ...} : on le relaie sans retoucher.
			var event json.RawMessage = []byte(msg.Payload)
			if err := conn.WriteJSON(event); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-time.After(30 * time.Second):
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
