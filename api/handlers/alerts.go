package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/musecoding/fleet-management-sytem/api"
	"github.com/musecoding/fleet-management-sytem/models"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// AlertHub stores connected ops clients (account id -> conn)
type AlertHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

var hub = &AlertHub{
	clients: make(map[string]*websocket.Conn),
}

// HandleAlertsWebSocket upgrades the connection and registers the caller
// for emergency assistance alerts. The caller authenticates with a JWT
// passed as the token query parameter.
func HandleAlertsWebSocket(w http.ResponseWriter, r *http.Request) {
	claims, err := api.VerifyJWT(r.URL.Query().Get("token"))
	if err != nil {
		zap.S().Warnw("rejected alerts websocket", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	accountID, _ := claims["sub"].(string)
	if accountID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade error", "error", err)
		return
	}

	hub.mutex.Lock()
	hub.clients[accountID] = conn
	hub.mutex.Unlock()
	zap.S().Debugf("account %s connected to /ws/alerts", accountID)

	conn.SetCloseHandler(func(code int, text string) error {
		hub.mutex.Lock()
		delete(hub.clients, accountID)
		hub.mutex.Unlock()
		zap.S().Debugf("account %s disconnected from /ws/alerts", accountID)
		return nil
	})

	// drain the connection to keep it alive
	for {
		if _, _, err := conn.NextReader(); err != nil {
			conn.Close()
			break
		}
	}
}

// broadcastEmergencyAlert pushes a created emergency assistance request to
// all connected clients
func broadcastEmergencyAlert(emergency models.EmergencyAssistance) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	for accountID, conn := range hub.clients {
		err := conn.WriteJSON(map[string]interface{}{
			"event": "emergency_assistance_requested",
			"data":  emergency,
		})
		if err != nil {
			zap.S().Warnw("failed to push emergency alert", "account", accountID, "error", err)
			delete(hub.clients, accountID)
			conn.Close()
		}
	}
}
