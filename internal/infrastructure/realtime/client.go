package realtime

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/techstock/techstock-api/pkg/logger"
)

// Client representa una conexión websocket dentro de una sala.
type Client struct {
	ID     string
	Sala   string
	UserID string
	hub    *Hub
	conn   *websocket.Conn
	send   chan Mensaje
	log    *logger.Logger
}

// NewClient construye un cliente para una conexión ya actualizada a websocket.
func NewClient(hub *Hub, conn *websocket.Conn, sala, userID string, log *logger.Logger) *Client {
	return &Client{
		ID:     uuid.New().String(),
		Sala:   sala,
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan Mensaje, 256),
		log:    log,
	}
}

// Run registra el cliente en el hub y atiende la conexión hasta que se cierre.
// Desregistra siempre al salir: cada Register tiene su Unregister.
func (c *Client) Run() {
	c.hub.Register(c)
	go c.writePump()
	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(65536)
	_ = c.conn.SetReadDeadline(time.Now().Add(PongWait * time.Second))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(PongWait * time.Second))
		return nil
	})

	// Canal de solo lectura para el cliente: los mensajes entrantes se ignoran,
	// el loop existe para detectar el cierre y refrescar el deadline.
	for {
		var msg Mensaje
		if err := c.conn.ReadJSON(&msg); err != nil {
			break
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(PongWait * time.Second))
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(PingInterval * time.Second)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
