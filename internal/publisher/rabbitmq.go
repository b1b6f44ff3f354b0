package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"car_finder/internal/domain"
)

const (
	ActionScrapeFinished = "scrape_finished"
	ActionFeedback       = "feedback"
)

// Message is the envelope of every event published by the client.
type Message[T any] struct {
	Action    string    `json:"action"`
	Data      T         `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// RabbitMQ publishes scrape runs and feedback signals to a durable direct
// exchange. Every publish waits for the broker confirm.
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("enable confirms: %w", err)
	}

	logger = logger.With("component", "publisher")
	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// declareTopology makes sure the exchange and the event queue exist and are
// bound, so events published before any consumer starts are kept.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

// PublishScrapeRun emits one finished scrape session.
func (r *RabbitMQ) PublishScrapeRun(ctx context.Context, run *domain.ScrapeRun) error {
	if err := publish(ctx, r, ActionScrapeFinished, run); err != nil {
		return err
	}

	r.logger.Debug("published scrape run", "phase", run.Phase)
	return nil
}

// PublishFeedback emits one like/dislike signal.
func (r *RabbitMQ) PublishFeedback(ctx context.Context, fb *domain.Feedback) error {
	if err := publish(ctx, r, ActionFeedback, fb); err != nil {
		return err
	}

	r.logger.Debug("published feedback",
		"car_id", fb.CarID,
		"preference", fb.Preference,
	)
	return nil
}

func publish[T any](ctx context.Context, r *RabbitMQ, action string, data T) error {
	now := time.Now().UTC()

	body, err := json.Marshal(Message[T]{
		Action:    action,
		Data:      data,
		Timestamp: now,
	})
	if err != nil {
		return fmt.Errorf("marshal %s message: %w", action, err)
	}

	confirm, err := r.channel.PublishWithDeferredConfirmWithContext(ctx, r.exchange, r.routingKey, false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Type:         action,
			Timestamp:    now,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s message: %w", action, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("wait for %s confirm: %w", action, err)
	}
	if !acked {
		return fmt.Errorf("publish %s message: nacked by broker", action)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
