package rabbitmq

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/clinic-companion/model"
	"github.com/muhammadheryan/clinic-companion/utils/errors"
	"github.com/muhammadheryan/clinic-companion/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Forwarder delivers an event to the clinic backend.
type Forwarder interface {
	PostPublicEvent(ctx context.Context, baseURL string, event model.PublicEvent) error
}

type Consumer struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	queue     string
	forwarder Forwarder
}

type Outcome int

const (
	OutcomeAck Outcome = iota
	OutcomeDrop
	OutcomeRequeue
)

func NewConsumer(host string, port int, user, password, queue string, forwarder Forwarder) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	if err := declareQueue(channel, queue); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Consumer{conn: conn, channel: channel, queue: queue, forwarder: forwarder}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		c.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				switch Process(ctx, c.forwarder, msg.Body) {
				case OutcomeRequeue:
					_ = msg.Nack(false, true)
				default:
					_ = msg.Ack(false)
				}
			}
		}
	}()

	return nil
}

// Process forwards one message body. Unreadable messages and events the backend rejects
// with a 4xx are dropped; transport and 5xx failures are requeued.
func Process(ctx context.Context, forwarder Forwarder, body []byte) Outcome {
	var msg PublicEventMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		logger.Error("[Process] unmarshal public event", zap.String("error", err.Error()))
		return OutcomeDrop
	}
	if msg.BaseURL == "" || msg.Event.EventName == "" {
		logger.Warn("[Process] incomplete public event", zap.String("base_url", msg.BaseURL))
		return OutcomeDrop
	}

	err := forwarder.PostPublicEvent(ctx, msg.BaseURL, msg.Event)
	if err == nil {
		logger.Debug("[Process] public event forwarded", zap.String("event", msg.Event.EventName))
		return OutcomeAck
	}

	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		logger.Warn("[Process] public event rejected", zap.String("event", msg.Event.EventName), zap.Int("status", apiErr.Status))
		return OutcomeDrop
	}

	logger.Error("[Process] forward public event", zap.String("event", msg.Event.EventName), zap.String("error", err.Error()))
	return OutcomeRequeue
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
