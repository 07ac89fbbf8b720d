package realtime

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/techstock/techstock-api/pkg/logger"
)

const (
	// PingInterval y PongWait en segundos, para el heartbeat del websocket.
	PingInterval = 30
	PongWait     = 60

	// SalaAdmin es la sala transversal del panel de revisión: recibe un evento
	// por cada cambio de estado de cualquier organización.
	SalaAdmin = "admin"
)

// SalaOrganizacion devuelve el nombre de sala de una organización.
func SalaOrganizacion(organizacionID string) string {
	return "org:" + organizacionID
}

// Mensaje es el sobre de los mensajes websocket.
type Mensaje struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Publisher publica eventos a Redis para broadcast entre instancias. origen
// identifica la instancia emisora para que esta pueda descartar su propio eco.
type Publisher interface {
	PublishEvento(origen, sala, event string, payload []byte) error
}

// Subscriber se suscribe al canal Redis de una sala e invoca handler por cada
// evento entrante, incluyendo el origen que lo publicó.
type Subscriber interface {
	SubscribeSala(sala string, handler func(origen, event string, payload []byte)) (cancel func(), err error)
}

// Hub mantiene sala -> conjunto de conexiones y reparte mensajes.
// La suscripción Redis de cada sala se abre con el primer cliente y se cancela
// con el último: registrar y desregistrar N veces deja cero suscripciones vivas.
type Hub struct {
	id    string // identidad de esta instancia en los sobres Redis
	salas map[string]map[string]*Client
	subs  map[string]func() // cancel de la suscripción Redis por sala
	mu    sync.RWMutex
	log   *logger.Logger
	pub   Publisher
	sub   Subscriber
}

// NewHub crea el hub. pub y sub pueden ser nil (broadcast solo local, una instancia).
func NewHub(log *logger.Logger, pub Publisher, sub Subscriber) *Hub {
	return &Hub{
		id:    uuid.New().String(),
		salas: make(map[string]map[string]*Client),
		subs:  make(map[string]func()),
		log:   log,
		pub:   pub,
		sub:   sub,
	}
}

// Register agrega un cliente a su sala. Si es el primero, abre la suscripción
// Redis de la sala.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	if h.salas[c.Sala] == nil {
		h.salas[c.Sala] = make(map[string]*Client)
		if h.sub != nil {
			sala := c.Sala
			cancel, err := h.sub.SubscribeSala(sala, func(origen, event string, payload []byte) {
				// BroadcastYPublicar ya entregó a los clientes locales: el eco
				// de lo publicado por esta misma instancia se descarta.
				if origen == h.id {
					return
				}
				h.Broadcast(sala, event, json.RawMessage(payload))
			})
			if err == nil {
				h.subs[sala] = cancel
			} else {
				h.log.Warn().Err(err).Str("sala", sala).Msg("suscripción redis de la sala falló, broadcast solo local")
			}
		}
	}
	h.salas[c.Sala][c.ID] = c
	h.mu.Unlock()
	h.log.Debug().Str("client_id", c.ID).Str("sala", c.Sala).Msg("cliente conectado")
}

// Unregister quita un cliente de su sala. Si era el último, cancela la
// suscripción Redis de la sala.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if m, ok := h.salas[c.Sala]; ok {
		delete(m, c.ID)
		if len(m) == 0 {
			delete(h.salas, c.Sala)
			if cancel, ok := h.subs[c.Sala]; ok {
				cancel()
				delete(h.subs, c.Sala)
			}
		}
	}
	h.mu.Unlock()
	h.log.Debug().Str("client_id", c.ID).Str("sala", c.Sala).Msg("cliente desconectado")
}

// Broadcast envía un mensaje a todos los clientes de la sala (solo local).
func (h *Hub) Broadcast(sala, event string, payload interface{}) {
	var data []byte
	switch v := payload.(type) {
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		data, _ = json.Marshal(payload)
	}
	msg := Mensaje{Event: event, Data: data}

	h.mu.RLock()
	clients := h.salas[sala]
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.send <- msg:
		default:
			// buffer lleno, se descarta
		}
	}
}

// BroadcastYPublicar envía a los clientes locales y publica a Redis para las
// demás instancias.
func (h *Hub) BroadcastYPublicar(sala, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.Broadcast(sala, event, json.RawMessage(data))
	if h.pub != nil {
		if err := h.pub.PublishEvento(h.id, sala, event, data); err != nil {
			h.log.Warn().Err(err).Str("sala", sala).Msg("publicación redis falló")
		}
	}
}

// Count devuelve el número de clientes conectados en la sala.
func (h *Hub) Count(sala string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.salas[sala])
}

// Suscripciones devuelve cuántas suscripciones Redis están vivas.
func (h *Hub) Suscripciones() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}
