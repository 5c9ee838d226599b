package event

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Routing keys for the domain events published on the topic exchange.
const (
	MissionCompleted = "mission.completed"
	MissionsReset    = "missions.reset"
	XPAwarded        = "profile.xp_awarded"
	ProfileReset     = "profile.reset"
	RoundStarted     = "quiz.round.started"
	RoundFinished    = "quiz.round.finished"
	UserRegistered   = "auth.user.registered"
	UserLoggedIn     = "auth.user.logged_in"
)

// Publisher pushes domain events to a RabbitMQ topic exchange. A nil
// Publisher is valid and publishes nothing, so callers never need to guard.
type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends one event with the routing key eventType. Failures are
// logged and swallowed; events are best-effort.
func (p *Publisher) Publish(eventType string, payload any) {
	if p == nil {
		return
	}
	body, err := json.Marshal(map[string]any{
		"type":      eventType,
		"payload":   payload,
		"timestamp": time.Now(),
	})
	if err != nil {
		log.Printf("error encoding event %s: %v", eventType, err)
		return
	}
	err = p.channel.Publish(p.exchange, eventType, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Printf("error publishing event %s: %v", eventType, err)
	}
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
