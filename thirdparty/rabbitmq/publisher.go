package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/rabbitmq/amqp091-go"
)

// PublicEventMessage is one queued analytics event and the backend it belongs to.
type PublicEventMessage struct {
	BaseURL    string            `json:"base_url"`
	Event      model.PublicEvent `json:"event"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	queue   string
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

func declareQueue(channel *amqp091.Channel, queue string) error {
	_, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	return err
}

func NewPublisher(host string, port int, user, password, queue string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declareQueue(channel, queue); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel, queue: queue}, nil
}

// Publish enqueues the event; the consumer delivers it to baseURL later.
func (p *Publisher) Publish(ctx context.Context, baseURL string, event model.PublicEvent) error {
	body, err := json.Marshal(PublicEventMessage{BaseURL: baseURL, Event: event, EnqueuedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
