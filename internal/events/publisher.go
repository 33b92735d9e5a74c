// Package events publishes domain events to RabbitMQ. Publish failures are
// logged and returned so callers can ignore them without interrupting the
// main request flow.
package events

import (
	"context"
	"encoding/json"
	"time"

	"campreserv-backend/internal/domain"
	"campreserv-backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// WaitlistOfferEvent is the payload published when a waitlist entry is
// offered a freed slot.
type WaitlistOfferEvent struct {
	EntryID       string     `json:"entry_id"`
	CampgroundID  string     `json:"campground_id"`
	GuestID       *string    `json:"guest_id,omitempty"`
	SiteID        *string    `json:"site_id,omitempty"`
	ArrivalDate   *time.Time `json:"arrival_date,omitempty"`
	DepartureDate *time.Time `json:"departure_date,omitempty"`
	Score         int        `json:"score"`
	OfferedAt     time.Time  `json:"offered_at"`
}

type Publisher struct {
	url   string
	queue string
}

func NewPublisher(url, queue string) *Publisher {
	return &Publisher{url: url, queue: queue}
}

// PublishWaitlistOffer publishes a WaitlistOfferEvent to the offer queue.
// Messages are marked persistent; the queue is declared durable on every
// publish so the call is safe against a fresh broker.
func (p *Publisher) PublishWaitlistOffer(ctx context.Context, entry domain.WaitlistEntry, score int) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		logger.Error("rabbitmq dial failed", "error", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("rabbitmq channel open failed", "error", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		logger.Error("rabbitmq queue declare failed", "queue", p.queue, "error", err)
		return err
	}

	event := WaitlistOfferEvent{
		EntryID:       entry.ID,
		CampgroundID:  entry.CampgroundID,
		GuestID:       entry.GuestID,
		SiteID:        entry.SiteID,
		ArrivalDate:   entry.ArrivalDate,
		DepartureDate: entry.DepartureDate,
		Score:         score,
		OfferedAt:     time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := ch.PublishWithContext(pubCtx,
		"",      // default exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	); err != nil {
		logger.Error("rabbitmq publish failed", "queue", p.queue, "error", err)
		return err
	}
	return nil
}
