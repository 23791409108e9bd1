package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func connectToRabbitMQ(url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < MaxConnectRetry; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		slog.Warn("failed to connect to RabbitMQ, retrying", "attempt", i+1, "max", MaxConnectRetry, "error", err)
		time.Sleep(RetryDelay)
	}
	return nil, fmt.Errorf("failed to connect to RabbitMQ after %d attempts: %w", MaxConnectRetry, err)
}

type RabbitMQPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	url     string
}

var _ Publisher = (*RabbitMQPublisher)(nil)

func NewRabbitMQPublisher(url string) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RabbitMQPublisher) connect() error {
	conn, err := connectToRabbitMQ(p.url)
	if err != nil {
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if _, err := channel.QueueDeclare(TrainQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("failed to declare queue %s: %w", TrainQueue, err)
	}

	p.conn = conn
	p.channel = channel
	slog.Info("RabbitMQ publisher connected", "queue", TrainQueue)
	return nil
}

func (p *RabbitMQPublisher) ensureChannel() error {
	if p.channel == nil || p.channel.IsClosed() {
		slog.Warn("RabbitMQ channel lost, reconnecting")
		if err := p.connect(); err != nil {
			return fmt.Errorf("cannot publish, failed to reconnect: %w", err)
		}
	}
	return nil
}

func (p *RabbitMQPublisher) PublishTrainTask(ctx context.Context, payload TrainTaskPayload) error {
	if err := p.ensureChannel(); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal train task payload: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",         // exchange (default)
		TrainQueue, // routing key (queue name)
		false,      // mandatory
		false,      // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish train task: %w", err)
	}

	slog.Info("published train task", "model_id", payload.ModelId)
	return nil
}

func (p *RabbitMQPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

type amqpTask struct {
	delivery amqp.Delivery
}

func (t *amqpTask) Type() string {
	return t.delivery.RoutingKey
}

func (t *amqpTask) Payload() []byte {
	return t.delivery.Body
}

func (t *amqpTask) Ack() error {
	return t.delivery.Ack(false)
}

func (t *amqpTask) Nack() error {
	return t.delivery.Nack(false, true)
}

type RabbitMQReceiver struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	tasks   chan Task
	done    chan struct{}
}

var _ Receiver = (*RabbitMQReceiver)(nil)

func NewRabbitMQReceiver(url string, prefetch int) (*RabbitMQReceiver, error) {
	conn, err := connectToRabbitMQ(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open RabbitMQ channel: %w", err)
	}

	if err := channel.Qos(prefetch, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if _, err := channel.QueueDeclare(TrainQueue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", TrainQueue, err)
	}

	deliveries, err := channel.Consume(TrainQueue, "", false, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to start consuming from %s: %w", TrainQueue, err)
	}

	r := &RabbitMQReceiver{
		conn:    conn,
		channel: channel,
		tasks:   make(chan Task),
		done:    make(chan struct{}),
	}

	go func() {
		defer close(r.tasks)
		for {
			select {
			case d, ok := <-deliveries:
				if !ok {
					slog.Warn("RabbitMQ delivery channel closed")
					return
				}
				r.tasks <- &amqpTask{delivery: d}
			case <-r.done:
				return
			}
		}
	}()

	slog.Info("RabbitMQ receiver consuming", "queue", TrainQueue)
	return r, nil
}

func (r *RabbitMQReceiver) Tasks() <-chan Task {
	return r.tasks
}

func (r *RabbitMQReceiver) Close() {
	close(r.done)
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		r.conn.Close()
	}
}
