package queue

import (
	"encoding/json"
	"fmt"
	"time"

	"marketing-hub/pkg/config"
	"marketing-hub/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	CommentQueueName  = "comment_notification_queue"
	CommentExchange   = "comment_notifications"
	commentRoutingKey = "content_comment"
)

// CommentEvent is published whenever a comment is left on a content item, so a
// downstream notifier can email the people who follow that content.
type CommentEvent struct {
	CommentID  int64     `json:"comment_id"`
	ContentID  int64     `json:"content_id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	ParentID   *int64    `json:"parent_comment_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		CommentExchange, // name
		"direct",        // type
		true,            // durable
		false,           // auto-deleted
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		CommentQueueName, // name
		true,             // durable
		false,            // delete when unused
		false,            // exclusive
		false,            // no-wait
		nil,              // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(
		CommentQueueName,
		commentRoutingKey,
		CommentExchange,
		false,
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishCommentEvent publishes a comment notification event. Failures are
// returned to the caller, which treats publishing as best-effort.
func (c *Client) PublishCommentEvent(event CommentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal comment event: %w", err)
	}

	err = c.channel.Publish(
		CommentExchange,   // exchange
		commentRoutingKey, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish comment event for content %d: %v", event.ContentID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// QueueLength returns the number of pending comment notifications.
func (c *Client) QueueLength() (int, error) {
	queue, err := c.channel.QueueInspect(CommentQueueName)
	if err != nil {
		return 0, err
	}
	return queue.Messages, nil
}
