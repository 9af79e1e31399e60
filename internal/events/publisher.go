// Package events publishes budget events to RabbitMQ.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"

	"github.com/ling-4j/prosperpath/internal/budget"
)

const publishTimeout = 5 * time.Second

// BudgetExceededMessage is the JSON body of a budget_exceeded message.
type BudgetExceededMessage struct {
	UserID         string          `json:"userId"`
	TransactionID  string          `json:"transactionId"`
	BudgetID       string          `json:"budgetId"`
	CategoryID     string          `json:"categoryId"`
	CategoryName   string          `json:"categoryName"`
	BudgetAmount   decimal.Decimal `json:"budgetAmount"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	Excess         decimal.Decimal `json:"excess"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	NotificationID string          `json:"notificationId,omitempty"`
	Message        string          `json:"message"`
	Timestamp      time.Time       `json:"timestamp"`
}

// NewBudgetExceededMessage flattens e into a message.
func NewBudgetExceededMessage(e *budget.BudgetExceeded, now time.Time) *BudgetExceededMessage {
	msg := &BudgetExceededMessage{
		UserID:        e.UserID,
		TransactionID: e.TransactionID,
		BudgetID:      e.Budget.ID,
		CategoryID:    e.Budget.CategoryID,
		BudgetAmount:  e.Budget.Amount,
		TotalSpent:    e.TotalSpent,
		Excess:        e.Excess,
		StartDate:     e.Budget.StartDate.Format("2006-01-02"),
		EndDate:       e.Budget.EndDate.Format("2006-01-02"),
		Timestamp:     now.UTC(),
	}
	if e.Category != nil {
		msg.CategoryName = e.Category.Name
	}
	if e.Notification != nil {
		msg.NotificationID = e.Notification.ID
		msg.Message = e.Notification.Message
	} else {
		msg.Message = budget.FormatMessage(e)
	}
	return msg
}

// channel is the part of *amqp091.Channel the publisher uses.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// Publisher sends BudgetExceeded events to a durable direct exchange.
// It implements budget.Publisher.
type Publisher struct {
	conn         *amqp091.Connection
	channel      channel
	exchangeName string
	queueName    string
	now          func() time.Time
}

var _ budget.Publisher = (*Publisher)(nil)

// NewPublisher dials url and declares the exchange and queue.
func NewPublisher(url, exchangeName, queueName string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p, err := newPublisher(ch, exchangeName, queueName)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	p.conn = conn
	return p, nil
}

func newPublisher(ch channel, exchangeName, queueName string) (*Publisher, error) {
	p := &Publisher{
		channel:      ch,
		exchangeName: exchangeName,
		queueName:    queueName,
		now:          time.Now,
	}
	if err := p.setup(); err != nil {
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}
	return p, nil
}

func (p *Publisher) setup() error {
	if err := p.channel.ExchangeDeclare(p.exchangeName, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}
	if _, err := p.channel.QueueDeclare(p.queueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}
	// Direct exchange: the routing key is the queue name.
	if err := p.channel.QueueBind(p.queueName, p.queueName, p.exchangeName, false, nil); err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}
	return nil
}

// PublishBudgetExceeded publishes e as a persistent JSON message.
func (p *Publisher) PublishBudgetExceeded(ctx context.Context, e *budget.BudgetExceeded) error {
	now := p.now()
	body, err := json.Marshal(NewBudgetExceededMessage(e, now))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchangeName, p.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    now,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.InfoContext(ctx, "Published budget exceeded message",
		"budget_id", e.Budget.ID,
		"user_id", e.UserID,
		"exchange", p.exchangeName,
		"queue", p.queueName,
	)
	return nil
}

// Close closes the channel and the connection.
func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
