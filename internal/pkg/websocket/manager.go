package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sewaroda/sewaroda/internal/pkg/constants"
	jwtpkg "github.com/sewaroda/sewaroda/internal/pkg/jwt"
	"github.com/sewaroda/sewaroda/internal/pkg/logger"
	"github.com/sewaroda/sewaroda/internal/pkg/models"
)

// Manager owns all live WebSocket connections and their group memberships.
// A driver may hold any number of connections at once; lookups returning
// zero connections are a normal outcome. All maps are guarded by the
// embedded RWMutex, so binds, unbinds and lookups are safe from any number
// of goroutines.
type Manager struct {
	sync.RWMutex
	conns    map[string]*models.WebSocketClient // connection id -> client
	byDriver map[string]map[string]struct{}     // driver id -> connection ids
	groups   map[string]map[string]struct{}     // group id -> connection ids
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		conns:    make(map[string]*models.WebSocketClient),
		byDriver: make(map[string]map[string]struct{}),
		groups:   make(map[string]map[string]struct{}),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates and handles a new WebSocket connection
func (m *Manager) HandleConnection(c echo.Context, handleClient func(*models.WebSocketClient, *websocket.Conn) error) error {
	client, err := m.authenticateClient(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	return handleClient(client, ws)
}

// authenticateClient authenticates the WebSocket client using JWT
func (m *Manager) authenticateClient(c echo.Context) (*models.WebSocketClient, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	claims, err := jwtpkg.ValidateDriverToken(parts[1], m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed",
			logger.Err(err))
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	return &models.WebSocketClient{
		ConnID:   uuid.New().String(),
		DriverID: claims.UserID,
		Role:     claims.Role,
	}, nil
}

// AddClient binds a client connection to its driver
func (m *Manager) AddClient(client *models.WebSocketClient) {
	m.Lock()
	defer m.Unlock()

	m.conns[client.ConnID] = client
	if _, ok := m.byDriver[client.DriverID]; !ok {
		m.byDriver[client.DriverID] = make(map[string]struct{})
	}
	m.byDriver[client.DriverID][client.ConnID] = struct{}{}
}

// RemoveClient unbinds a connection and removes it from every group it
// joined. Group membership does not outlive the connection.
func (m *Manager) RemoveClient(connID string) {
	m.Lock()
	defer m.Unlock()

	client, ok := m.conns[connID]
	if !ok {
		return
	}
	delete(m.conns, connID)

	if connIDs, ok := m.byDriver[client.DriverID]; ok {
		delete(connIDs, connID)
		if len(connIDs) == 0 {
			delete(m.byDriver, client.DriverID)
		}
	}

	for groupID, members := range m.groups {
		delete(members, connID)
		if len(members) == 0 {
			delete(m.groups, groupID)
		}
	}
}

// Connections returns the ids of all live connections held by a driver.
// An empty result is not an error; the driver is simply not connected.
func (m *Manager) Connections(driverID string) []string {
	m.RLock()
	defer m.RUnlock()

	connIDs := make([]string, 0, len(m.byDriver[driverID]))
	for connID := range m.byDriver[driverID] {
		connIDs = append(connIDs, connID)
	}
	return connIDs
}

// JoinGroup adds a connection to a named group. Joining with a connection
// that has already gone away is a no-op.
func (m *Manager) JoinGroup(connID, groupID string) {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.conns[connID]; !ok {
		return
	}
	if _, ok := m.groups[groupID]; !ok {
		m.groups[groupID] = make(map[string]struct{})
	}
	m.groups[groupID][connID] = struct{}{}
}

// GroupMembers returns the connection ids currently joined to a group
func (m *Manager) GroupMembers(groupID string) []string {
	m.RLock()
	defer m.RUnlock()

	members := make([]string, 0, len(m.groups[groupID]))
	for connID := range m.groups[groupID] {
		members = append(members, connID)
	}
	return members
}

// BroadcastToGroup sends one message to every connection in a group.
// Broadcasting to an empty or unknown group is a no-op.
func (m *Manager) BroadcastToGroup(groupID, event string, data interface{}) {
	m.RLock()
	clients := make([]*models.WebSocketClient, 0, len(m.groups[groupID]))
	for connID := range m.groups[groupID] {
		if client, ok := m.conns[connID]; ok {
			clients = append(clients, client)
		}
	}
	m.RUnlock()

	for _, client := range clients {
		if err := m.SendMessage(client, event, data); err != nil {
			logger.Warn("Error sending group message to client",
				logger.String("driver_id", client.DriverID),
				logger.String("conn_id", client.ConnID),
				logger.String("group_id", groupID),
				logger.Err(err))
		}
	}
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(client *models.WebSocketClient, event string, data interface{}) error {
	if client == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %v", err)
	}

	response := models.WSMessage{
		Event: event,
		Data:  rawData,
	}

	return client.WriteJSON(response)
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(client *models.WebSocketClient, code string, message string) error {
	return m.SendMessage(client, constants.EventError, models.WSErrorMessage{
		Code:    code,
		Message: message,
	})
}
