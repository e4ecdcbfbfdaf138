package tracking

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/matst80/slask-listing/pkg/messaging"
	"github.com/matst80/slask-listing/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const trackingTopic = messaging.Topic("tracking")

// RabbitTracking publishes listing actions to a rabbit topic, fire and
// forget, send failures are logged and never reach the request path.
type RabbitTracking struct {
	prefix     string
	connection *amqp.Connection
}

func NewRabbitTracking(url, prefix string) (*RabbitTracking, error) {
	ret := RabbitTracking{
		prefix: prefix,
	}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, t.prefix, trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) {
	if err := messaging.Publish(t.connection, t.prefix, trackingTopic, data); err != nil {
		log.Printf("error sending tracking event: %v", err)
	}
}

func baseEvent(sessionId string, event uint16) *BaseEvent {
	return &BaseEvent{
		SessionId: sessionId,
		EventId:   uuid.NewString(),
		Event:     event,
	}
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	t.send(SessionEvent{
		BaseEvent: baseEvent(sessionId, EventSession),
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
}

func (t *RabbitTracking) TrackQuery(sessionId string, query string, resultLen int) {
	t.send(QueryEvent{
		BaseEvent: baseEvent(sessionId, EventQuery),
		Query:     query,
		ResultLen: resultLen,
	})
}

func (t *RabbitTracking) TrackOwnerToggle(sessionId string, id types.UserId) {
	t.send(ToggleEvent{
		BaseEvent: baseEvent(sessionId, EventOwnerToggle),
		Id:        uint(id),
	})
}

func (t *RabbitTracking) TrackCategoryToggle(sessionId string, id types.CategoryId) {
	t.send(ToggleEvent{
		BaseEvent: baseEvent(sessionId, EventCategoryToggle),
		Id:        uint(id),
	})
}

func (t *RabbitTracking) TrackCategoryClear(sessionId string) {
	t.send(baseEvent(sessionId, EventCategoryClear))
}

func (t *RabbitTracking) TrackSort(sessionId string, column types.SortColumn, reversed bool) {
	t.send(SortEvent{
		BaseEvent: baseEvent(sessionId, EventSort),
		Column:    column.String(),
		Reversed:  reversed,
	})
}

func (t *RabbitTracking) TrackReset(sessionId string) {
	t.send(baseEvent(sessionId, EventReset))
}
