package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstock/techstock-api/pkg/logger"
)

type fakeSubscriber struct {
	subscribes int
	cancels    int
	handlers   map[string]func(origen, event string, payload []byte)
	err        error
}

func newFakeSubscriber() *fakeSubscriber {
	return &fakeSubscriber{handlers: map[string]func(origen, event string, payload []byte){}}
}

func (f *fakeSubscriber) SubscribeSala(sala string, handler func(origen, event string, payload []byte)) (func(), error) {
	if f.err != nil {
		return nil, f.err
	}
	f.subscribes++
	f.handlers[sala] = handler
	return func() { f.cancels++ }, nil
}

type fakePublisher struct {
	publicados []string
	origenes   []string
}

func (f *fakePublisher) PublishEvento(origen, sala, event string, payload []byte) error {
	f.publicados = append(f.publicados, sala+"/"+event)
	f.origenes = append(f.origenes, origen)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func clienteDePrueba(sala string) *Client {
	return &Client{
		ID:   "cli-" + sala,
		Sala: sala,
		send: make(chan Mensaje, 16),
	}
}

// Registrar y desregistrar N clientes debe dejar exactamente N suscripciones
// abiertas y N canceladas: ninguna queda viva.
func TestHub_SuscripcionesBalanceadas(t *testing.T) {
	sub := newFakeSubscriber()
	hub := NewHub(testLogger(), nil, sub)

	salas := []string{SalaOrganizacion("org1"), SalaOrganizacion("org2"), SalaAdmin}
	clientes := make([]*Client, 0, len(salas))
	for _, sala := range salas {
		c := clienteDePrueba(sala)
		hub.Register(c)
		clientes = append(clientes, c)
	}

	assert.Equal(t, 3, sub.subscribes)
	assert.Equal(t, 3, hub.Suscripciones())

	for _, c := range clientes {
		hub.Unregister(c)
	}

	assert.Equal(t, 3, sub.cancels)
	assert.Zero(t, hub.Suscripciones(), "no deben quedar suscripciones vivas")
}

// La suscripción de la sala se abre con el primer cliente y se cancela recién
// con el último.
func TestHub_UnaSuscripcionPorSala(t *testing.T) {
	sub := newFakeSubscriber()
	hub := NewHub(testLogger(), nil, sub)
	sala := SalaOrganizacion("org1")

	c1 := &Client{ID: "c1", Sala: sala, send: make(chan Mensaje, 16)}
	c2 := &Client{ID: "c2", Sala: sala, send: make(chan Mensaje, 16)}
	hub.Register(c1)
	hub.Register(c2)
	assert.Equal(t, 1, sub.subscribes, "la segunda conexión reusa la suscripción")
	assert.Equal(t, 2, hub.Count(sala))

	hub.Unregister(c1)
	assert.Zero(t, sub.cancels, "aún queda un cliente en la sala")

	hub.Unregister(c2)
	assert.Equal(t, 1, sub.cancels)
	assert.Zero(t, hub.Count(sala))
}

func TestHub_BroadcastSoloALaSala(t *testing.T) {
	hub := NewHub(testLogger(), nil, nil)
	enSala := &Client{ID: "c1", Sala: SalaOrganizacion("org1"), send: make(chan Mensaje, 16)}
	fuera := &Client{ID: "c2", Sala: SalaOrganizacion("org2"), send: make(chan Mensaje, 16)}
	hub.Register(enSala)
	hub.Register(fuera)

	hub.Broadcast(SalaOrganizacion("org1"), "organizacion_actualizada", map[string]string{"estado": "APROBADA"})

	require.Len(t, enSala.send, 1)
	msg := <-enSala.send
	assert.Equal(t, "organizacion_actualizada", msg.Event)
	var data map[string]string
	require.NoError(t, json.Unmarshal(msg.Data, &data))
	assert.Equal(t, "APROBADA", data["estado"])

	assert.Empty(t, fuera.send, "la otra sala no debe recibir el mensaje")
}

// Un buffer de envío lleno descarta el mensaje en vez de bloquear el hub.
func TestHub_BufferLlenoNoBloquea(t *testing.T) {
	hub := NewHub(testLogger(), nil, nil)
	c := &Client{ID: "c1", Sala: SalaAdmin, send: make(chan Mensaje, 1)}
	hub.Register(c)

	hub.Broadcast(SalaAdmin, "e1", nil)
	hub.Broadcast(SalaAdmin, "e2", nil)

	assert.Len(t, c.send, 1, "el segundo mensaje se descarta")
}

func TestHub_BroadcastYPublicar(t *testing.T) {
	pub := &fakePublisher{}
	hub := NewHub(testLogger(), pub, nil)
	c := &Client{ID: "c1", Sala: SalaAdmin, send: make(chan Mensaje, 16)}
	hub.Register(c)

	hub.BroadcastYPublicar(SalaAdmin, "solicitud_actualizada", map[string]string{"id": "org1"})

	assert.Len(t, c.send, 1, "llega a los clientes locales")
	require.Len(t, pub.publicados, 1, "y se publica a redis para otras instancias")
	assert.Equal(t, SalaAdmin+"/solicitud_actualizada", pub.publicados[0])
}

// Un evento entrante desde Redis se reparte a los clientes locales de la sala.
func TestHub_EventoDesdeRedisLlegaALosClientes(t *testing.T) {
	sub := newFakeSubscriber()
	hub := NewHub(testLogger(), nil, sub)
	sala := SalaOrganizacion("org1")
	c := &Client{ID: "c1", Sala: sala, send: make(chan Mensaje, 16)}
	hub.Register(c)

	handler, ok := sub.handlers[sala]
	require.True(t, ok)
	handler("otra-instancia", "organizacion_actualizada", []byte(`{"estado":"APROBADA"}`))

	require.Len(t, c.send, 1)
	msg := <-c.send
	assert.Equal(t, "organizacion_actualizada", msg.Event)
}

// La instancia que publica ya entregó el evento a sus clientes locales: el eco
// que le llega de vuelta por su propia suscripción Redis se descarta, para que
// nadie reciba la misma transición dos veces.
func TestHub_DescartaElEcoDeSusPropiasPublicaciones(t *testing.T) {
	pub := &fakePublisher{}
	sub := newFakeSubscriber()
	hub := NewHub(testLogger(), pub, sub)
	sala := SalaOrganizacion("org1")
	c := &Client{ID: "c1", Sala: sala, send: make(chan Mensaje, 16)}
	hub.Register(c)

	hub.BroadcastYPublicar(sala, "organizacion_actualizada", map[string]string{"estado": "APROBADA"})
	require.Len(t, c.send, 1, "entrega local inmediata")
	<-c.send

	// Redis reenvía el mensaje a todos los suscriptores, emisor incluido.
	handler := sub.handlers[sala]
	require.Len(t, pub.origenes, 1)
	handler(pub.origenes[0], "organizacion_actualizada", []byte(`{"estado":"APROBADA"}`))
	assert.Empty(t, c.send, "el eco propio no se reentrega")

	// El mismo evento desde otra instancia sí se entrega.
	handler("otra-instancia", "organizacion_actualizada", []byte(`{"estado":"APROBADA"}`))
	assert.Len(t, c.send, 1)
}

// Si la suscripción Redis falla, el hub sigue funcionando en modo local.
func TestHub_FalloDeSuscripcion_BroadcastLocal(t *testing.T) {
	sub := newFakeSubscriber()
	sub.err = assert.AnError
	hub := NewHub(testLogger(), nil, sub)
	c := &Client{ID: "c1", Sala: SalaAdmin, send: make(chan Mensaje, 16)}
	hub.Register(c)

	assert.Zero(t, hub.Suscripciones())
	hub.Broadcast(SalaAdmin, "evento", nil)
	assert.Len(t, c.send, 1)
}
