package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"portfolia/internal/domain/entity"
	"portfolia/internal/infrastructure/realtime"
	ws "portfolia/internal/infrastructure/websocket"
	"portfolia/internal/usecase"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
)

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: restrict to the site origin before go-live
	},
}

// Tables any session may watch live.
var publicTables = map[string]bool{
	"articles":      true,
	"comments":      true,
	"article_likes": true,
	"donations":     true,
	"services":      true,
	"skills":        true,
	"education":     true,
	"projects":      true,
	"testimonials":  true,
}

// WebSocketHandler upgrades the connection, authenticates it, and then
// brokers live row-change subscriptions for the session. Every subscription
// opened over a connection is torn down when the connection closes.
type WebSocketHandler struct {
	wsManager      *ws.Manager
	authClient     *auth.Client
	roleUC         *usecase.RoleUseCase
	chatUseCase    *usecase.ChatUseCase
	notificationUC *usecase.NotificationUseCase
	bus            *realtime.Bus
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	authClient *auth.Client,
	roleUC *usecase.RoleUseCase,
	chatUseCase *usecase.ChatUseCase,
	notificationUC *usecase.NotificationUseCase,
	bus *realtime.Bus,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:      wsManager,
		authClient:     authClient,
		roleUC:         roleUC,
		chatUseCase:    chatUseCase,
		notificationUC: notificationUC,
		bus:            bus,
	}
}

// Control messages sent by the client over the socket.
type wsRequest struct {
	Action         string `json:"action"` // "subscribe" | "unsubscribe"
	Table          string `json:"table,omitempty"`
	FilterColumn   string `json:"filter_column,omitempty"`
	FilterValue    string `json:"filter_value,omitempty"`
	SubscriptionID string `json:"subscription_id,omitempty"`
}

type wsAck struct {
	Kind           string `json:"kind"` // "subscribed" | "unsubscribed" | "error"
	SubscriptionID string `json:"subscription_id,omitempty"`
	Table          string `json:"table,omitempty"`
	Message        string `json:"message,omitempty"`
}

type wsChange struct {
	Kind           string               `json:"kind"` // "change"
	SubscriptionID string               `json:"subscription_id"`
	Event          realtime.ChangeEvent `json:"event"`
}

// HandleWebSocket serves /ws. A Firebase ID token may be passed as the
// "token" query parameter; without one the session joins as a guest and can
// only watch public tables.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	userID, role := h.identify(c)

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := &ws.Client{
		UserID: userID,
		Role:   role,
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
	h.wsManager.Register(client)

	go client.WritePump()
	h.readLoop(client)

	return nil
}

// identify resolves the session from the token query parameter. Invalid or
// missing tokens degrade to a guest session rather than failing the upgrade.
func (h *WebSocketHandler) identify(c echo.Context) (string, entity.Role) {
	token := c.QueryParam("token")
	if token == "" {
		return "guest:" + uuid.New().String(), entity.RoleGuest
	}

	verified, err := h.authClient.VerifyIDToken(c.Request().Context(), token)
	if err != nil {
		return "guest:" + uuid.New().String(), entity.RoleGuest
	}

	return verified.UID, h.roleUC.ResolveRole(c.Request().Context(), verified.UID)
}

// readLoop owns the socket's subscriptions. It blocks until the connection
// drops, then tears everything down: bus subscriptions, the manager entry,
// and the admin's notification-permission session.
func (h *WebSocketHandler) readLoop(client *ws.Client) {
	subs := make(map[string]*realtime.Subscription)

	defer func() {
		// Close blocks until each subscription's delivery goroutine exits,
		// and Unregister until the manager can no longer reach the client,
		// so nothing can push into Send once it is closed below.
		for _, sub := range subs {
			sub.Close()
		}
		h.wsManager.Unregister(client)
		client.Conn.Close()
		close(client.Send)
		if client.Role == entity.RoleAdmin {
			h.notificationUC.ClearSession(client.UserID)
		}
	}()

	for {
		_, raw, err := client.Conn.ReadMessage()
		if err != nil {
			if gorillaws.IsUnexpectedCloseError(err, gorillaws.CloseGoingAway, gorillaws.CloseAbnormalClosure) {
				logger.Warn("websocket read: %v", err)
			}
			return
		}

		var req wsRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			h.ack(client, wsAck{Kind: "error", Message: "Malformed request"})
			continue
		}

		switch req.Action {
		case "subscribe":
			h.subscribe(client, subs, req)
		case "unsubscribe":
			if sub, ok := subs[req.SubscriptionID]; ok {
				sub.Close()
				delete(subs, req.SubscriptionID)
				h.ack(client, wsAck{Kind: "unsubscribed", SubscriptionID: req.SubscriptionID})
			}
		default:
			h.ack(client, wsAck{Kind: "error", Message: "Unknown action"})
		}
	}
}

func (h *WebSocketHandler) subscribe(client *ws.Client, subs map[string]*realtime.Subscription, req wsRequest) {
	if !h.authorized(client, req) {
		h.ack(client, wsAck{Kind: "error", Table: req.Table, Message: "Subscription not allowed"})
		return
	}

	id := uuid.New().String()
	filter := realtime.Filter{Column: req.FilterColumn, Value: req.FilterValue}

	sub := h.bus.Subscribe(req.Table, filter, func(ev realtime.ChangeEvent) {
		payload, err := json.Marshal(wsChange{Kind: "change", SubscriptionID: id, Event: ev})
		if err != nil {
			return
		}
		select {
		case client.Send <- payload:
		default:
			logger.Warn("Dropping change event for slow client %s", client.UserID)
		}
	})
	subs[id] = sub

	h.ack(client, wsAck{Kind: "subscribed", SubscriptionID: id, Table: req.Table})
}

// authorized decides whether the session may watch the requested rows.
// Public tables are open to everyone. Chat messages require ownership of the
// conversation (or admin). Everything else is admin only.
func (h *WebSocketHandler) authorized(client *ws.Client, req wsRequest) bool {
	if publicTables[req.Table] {
		return true
	}
	if client.Role == entity.RoleAdmin {
		return true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	switch req.Table {
	case "chat_messages":
		return req.FilterColumn == "conversation_id" &&
			h.chatUseCase.CanAccess(ctx, client.UserID, req.FilterValue)
	case "conversations":
		return req.FilterColumn == "user_id" && req.FilterValue == client.UserID
	}
	return false
}

func (h *WebSocketHandler) ack(client *ws.Client, ack wsAck) {
	payload, err := json.Marshal(ack)
	if err != nil {
		return
	}
	select {
	case client.Send <- payload:
	default:
	}
}
