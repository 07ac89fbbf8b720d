package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/techstock/techstock-api/pkg/logger"
)

const (
	channelPrefix = "realtime:"
	publishTTL    = 5 * time.Second
)

var (
	_ Publisher  = (*RedisPubSub)(nil)
	_ Subscriber = (*RedisPubSub)(nil)
)

// redisPayload es el mensaje publicado a Redis para broadcast entre instancias.
// Origen lleva la identidad de la instancia emisora; el hub lo usa para
// descartar el eco de sus propias publicaciones.
type redisPayload struct {
	Origen string          `json:"origen"`
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	At     int64           `json:"at"`
}

// RedisPubSub implementa Publisher y Subscriber sobre pub/sub de Redis.
type RedisPubSub struct {
	client *redis.Client
	log    *logger.Logger
}

// NewRedisPubSub crea el puente pub/sub para eventos realtime.
func NewRedisPubSub(client *redis.Client, log *logger.Logger) *RedisPubSub {
	return &RedisPubSub{client: client, log: log}
}

// PublishEvento publica un evento al canal Redis de la sala, firmado con el
// origen de la instancia emisora.
func (r *RedisPubSub) PublishEvento(origen, sala, event string, payload []byte) error {
	channel := channelPrefix + sala
	body, err := json.Marshal(redisPayload{Origen: origen, Event: event, Data: payload, At: time.Now().Unix()})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTTL)
	defer cancel()
	return r.client.Publish(ctx, channel, body).Err()
}

// SubscribeSala se suscribe al canal Redis de la sala y llama handler por cada
// mensaje. Devuelve una función cancel para cerrar la suscripción.
func (r *RedisPubSub) SubscribeSala(sala string, handler func(origen, event string, payload []byte)) (cancel func(), err error) {
	channel := channelPrefix + sala
	ctx, cancelCtx := context.WithCancel(context.Background())
	pubsub := r.client.Subscribe(ctx, channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		cancelCtx()
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var p redisPayload
				if err := json.Unmarshal([]byte(msg.Payload), &p); err != nil {
					continue
				}
				handler(p.Origen, p.Event, p.Data)
			}
		}
	}()
	return func() { cancelCtx() }, nil
}
