package models

import (
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is one live driver connection. A driver may hold several
// clients at once; ConnID distinguishes them.
type WebSocketClient struct {
	ConnID   string
	DriverID string
	Role     string
	Conn     *websocket.Conn

	writeMu sync.Mutex
}

// WriteJSON serializes writes to the underlying connection; gorilla
// connections do not support concurrent writers.
func (c *WebSocketClient) WriteJSON(v interface{}) error {
	if c.Conn == nil {
		return nil
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteJSON(v)
}

// DriverClaims are the JWT claims carried by an authenticated driver, both
// on HTTP requests and on WebSocket upgrades
type DriverClaims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}
