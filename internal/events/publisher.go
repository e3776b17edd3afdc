// Package events publishes domain events to Kafka. Publishing is
// best-effort: a broker failure is logged and never fails the request
// that produced the event.
package events

import (
	"context"
	"time"

	"innkeep/config"
	"innkeep/infras/kafka"
	"innkeep/infras/otel"
	"innkeep/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	TopicBookingCreated  = "booking.created"
	TopicPaymentRecorded = "payment.recorded"
)

type BookingCreated struct {
	BookingID  string          `json:"booking_id"`
	RoomID     string          `json:"room_id"`
	UserID     string          `json:"user_id"`
	StartDate  string          `json:"start_date"`
	EndDate    string          `json:"end_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

type PaymentRecorded struct {
	PaymentID  string          `json:"payment_id"`
	BookingID  string          `json:"booking_id"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Status     string          `json:"status"`
	RecordedAt time.Time       `json:"recorded_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, event BookingCreated)
	PaymentRecorded(ctx context.Context, event PaymentRecorded)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, event BookingCreated) {
	p.publish(ctx, TopicBookingCreated, event.BookingID, event)
}

func (p *publisherImpl) PaymentRecorded(ctx context.Context, event PaymentRecorded) {
	p.publish(ctx, TopicPaymentRecorded, event.PaymentID, event)
}

func (p *publisherImpl) publish(ctx context.Context, topic, key string, payload any) {
	if !p.cfg.Kafka.Enable {
		return
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	scope.SetAttribute("event.topic", topic)

	message := kafka.Message{
		Key:   key,
		Value: payload,
	}

	if err := p.client.SendMessages(ctx, topic, message); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish event")
		scope.TraceError(err)
	}
}
