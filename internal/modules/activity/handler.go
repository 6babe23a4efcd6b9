package activity

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	jwtsvc "github.com/Jasrah85/vibrant-art-group/internal/pkg/jwt"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,

	// Origin is not checked here; the deployment fronts this with the same
	// CORS policy as the REST API.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	hub *Hub
	jwt *jwtsvc.Service
}

func NewHandler(hub *Hub, jwt *jwtsvc.Service) *Handler {
	return &Handler{hub: hub, jwt: jwt}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws/activity", h.HandleWebSocket)
}

// HandleWebSocket upgrades GET /ws/activity?token=JWT[&requestId=ID].
// Browsers cannot set headers on websocket dials, so the token rides a
// query parameter. With requestId set only that request's events arrive,
// without it the whole studio feed does.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Token is required. Use ?token=YOUR_JWT_TOKEN",
		})
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid or expired token",
		})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	requestID := c.Query("requestId")
	h.hub.Subscribe(conn, requestID)
	log.Printf("admin %s connected to activity feed requestId=%q", claims.Email, requestID)

	defer func() {
		h.hub.Unsubscribe(conn)
		log.Printf("admin %s disconnected from activity feed", claims.Email)
	}()

	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	})

	go h.pingLoop(conn)
	h.readLoop(conn)
}

func (h *Handler) pingLoop(conn *websocket.Conn) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
			return
		}
	}
}

// readLoop drains the connection. The feed is one-way; inbound frames are
// discarded, but reading is what notices the peer going away.
func (h *Handler) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(1024)
	_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
