package handler

import (
	"context"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"resumeforge-be/internal/pkg/logger"
	internalWS "resumeforge-be/internal/websocket"
	"resumeforge-be/pkg/events"
	pktNats "resumeforge-be/pkg/nats"
)

// NotificationHandler upgrades websocket connections and relays credit events
// from the bus to connected clients.
type NotificationHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewNotificationHandler(hub *internalWS.Hub, log logger.ILogger) *NotificationHandler {
	return &NotificationHandler{
		hub:    hub,
		logger: log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *NotificationHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token may
	// arrive as a query param instead.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}
	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token"})
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.ErrUnauthorized
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		h.logger.Warn("NotificationHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token claims"})
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token missing user_id"})
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user ID format in token"})
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			internalWS.ServeWs(h.hub, conn, userID)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// BindEventStream subscribes to the event bus and pushes balance changes to
// whoever is connected. Events without a user_id are skipped.
func (h *NotificationHandler) BindEventStream(sub *pktNats.Subscriber) error {
	return sub.Subscribe("events.>", "notification-push", func(ctx context.Context, event events.Event) error {
		payload := event.Payload()

		rawUserId, ok := payload["user_id"].(string)
		if !ok {
			return nil
		}
		userId, err := uuid.Parse(rawUserId)
		if err != nil {
			return nil
		}

		switch event.EventType() {
		case events.TypeCreditDeducted, events.TypeCreditsGranted, events.TypePlanUpgraded:
			h.hub.Send(userId, internalWS.Notification{
				Type: event.EventType(),
				Data: payload,
			})
		}
		return nil
	})
}
