package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/domain"
	"github.com/suchimauz/clinic-calendar-engine/internal/core/ports/out"
)

type AppointmentEventMessage struct {
	EventID     uuid.UUID          `json:"eventId"`
	DoctorID    string             `json:"doctorId"`
	Appointment domain.Appointment `json:"appointment"`
}

func (l *CacheHitListener) startAppointmentQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueBind,
		l.cfg.RabbitMQ.QueueConfig.AppointmentQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processAppointmentMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

// Любое изменение записи на прием делает закэшированные представления
// ее врача устаревшими
func (l *CacheHitListener) processAppointmentMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAppointment {
		return nil
	}

	var msgJson AppointmentEventMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("appointment.message.received", out.LogFields{
		"eventId":  msgJson.EventID,
		"doctorId": msgJson.DoctorID,
		"action":   cacheMessageRoutingKey.CacheHitType,
	})

	doctorID := msgJson.DoctorID
	if doctorID == "" {
		doctorID = msgJson.Appointment.DoctorID
	}

	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeStore ||
		cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		go l.useCase.InvalidateDoctorViewCache(ctx, doctorID)

		l.logger.Info("appointment.message.views_invalidated", out.LogFields{
			"appointmentId": msgJson.Appointment.ID,
			"doctorId":      doctorID,
		})
	}

	return nil
}
