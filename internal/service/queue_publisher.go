// Package queue_publisher publishes notification events to RabbitMQ.
// Publishing happens after a core operation has already succeeded, so
// errors are logged and returned for the caller to ignore: a broker
// outage must never fail a request.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/cinemagico/customer-api/internal/queue"
)

// PublishOrderPlaced emits an OrderPlacedEvent after a successful cart
// checkout.
func PublishOrderPlaced(ctx context.Context, ev q.OrderPlacedEvent) error {
	return publish(ctx, q.QueueOrderPlaced, ev)
}

// PublishReservationCancelled emits a ReservationCancelledEvent after
// a reservation reaches the cancelada state.
func PublishReservationCancelled(ctx context.Context, ev q.ReservationCancelledEvent) error {
	return publish(ctx, q.QueueReservationCancelled, ev)
}

// PublishAccountRecovery emits an AccountRecoveryEvent after a password
// recovery request.
func PublishAccountRecovery(ctx context.Context, ev q.AccountRecoveryEvent) error {
	return publish(ctx, q.QueueAccountRecovery, ev)
}

// publish declares the target queue (idempotent, durable) and sends
// the event as a persistent JSON message on the default exchange.
func publish(ctx context.Context, queueName string, event any) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
